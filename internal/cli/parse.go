package cli

import (
	"fmt"
	"strings"
)

// Options is the parsed command line.
type Options struct {
	Help      bool     // -h
	Version   bool     // -version
	ConfigDir string   // -config <dir>
	Command   string   // -c <command>
	LogLevel  string   // -log-level <level>, literal not yet validated
	Leftover  []string // stray positional arguments, always an error
}

// Parse turns the argument vector (excluding the program name) into
// Options.
//
// Unrecognized flags and value-bearing flags with a missing value are parse
// failures. Stray positional arguments are collected rather than rejected
// here; Execute enforces the precedence between -h, stray arguments, and
// -version.
func Parse(args []string) (*Options, error) {
	opts := &Options{}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-h":
			opts.Help = true
			i++

		case "-version":
			opts.Version = true
			i++

		case "-config":
			val, err := value(args, i)
			if err != nil {
				return nil, err
			}
			opts.ConfigDir = val
			i += 2

		case "-c":
			val, err := value(args, i)
			if err != nil {
				return nil, err
			}
			opts.Command = val
			i += 2

		case "-log-level":
			val, err := value(args, i)
			if err != nil {
				return nil, err
			}
			opts.LogLevel = val
			i += 2

		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			opts.Leftover = append(opts.Leftover, arg)
			i++
		}
	}

	return opts, nil
}

// Returns the value following the flag at index i.
func value(args []string, i int) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("flag %s requires a value", args[i])
	}
	return args[i+1], nil
}
