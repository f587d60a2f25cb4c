// Package protocol implements the wire format of the control socket.
//
// Every exchange is a single newline-delimited JSON envelope carrying a
// command name and an optional payload. The codec is deliberately dumb and
// does not log through slog itself; wire-level diagnostics flow through the
// bridge installed with [EnableTrace].
package protocol

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/riverlabs/river/internal/logging"
)

// Command names understood by the control socket.
type Command string

const (
	CmdStatus   Command = "status"
	CmdShutdown Command = "shutdown"
	CmdOK       Command = "ok"
	CmdError    Command = "error"
)

// Frames every message on the wire.
type Envelope struct {
	Command Command         `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Answers a status command.
type StatusResult struct {
	Running  bool   `json:"running"`
	Version  string `json:"version"`
	Pid      int    `json:"pid"`
	Uptime   string `json:"uptime"`
	Requests int    `json:"requests"`
}

// Carries a human-readable failure message.
type ErrorResult struct {
	Message string `json:"message"`
}

// Bridge for wire-level diagnostics. Nil until EnableTrace; a nil bridge
// drops every line.
var trace *logging.Bridge

// EnableTrace installs the bridge used for wire-level diagnostics.
func EnableTrace(b *logging.Bridge) {
	trace = b
}

// Encode marshals a command and payload into one envelope line, without the
// trailing newline.
func Encode(cmd Command, payload any) ([]byte, error) {
	env := Envelope{Command: cmd}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s payload: %w", cmd, err)
		}
		env.Payload = raw
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding %s envelope: %w", cmd, err)
	}

	trace.Linef(slog.LevelDebug, "encoded %s envelope (%d bytes)", cmd, len(data))
	return data, nil
}

// Decode unmarshals one envelope line and returns the raw payload alongside
// the envelope.
func Decode(line []byte) (*Envelope, json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(line, &env); err != nil {
		trace.Linef(slog.LevelWarn, "rejected malformed envelope (%d bytes)", len(line))
		return nil, nil, fmt.Errorf("decoding envelope: %w", err)
	}

	if env.Command == "" {
		trace.Linef(slog.LevelWarn, "rejected envelope with no command")
		return nil, nil, fmt.Errorf("decoding envelope: missing command")
	}

	trace.Linef(slog.LevelDebug, "decoded %s envelope", env.Command)
	return &env, env.Payload, nil
}

// DecodePayload unmarshals a raw payload into T.
func DecodePayload[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return &v, nil
}
