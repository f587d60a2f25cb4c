// Provides filesystem paths for the server.
//
// Runtime paths (control socket, PID file) follow XDG conventions under
// $XDG_RUNTIME_DIR/river. The init script lookup has its own fallback
// chain defined by the startup contract: an explicit -config directory,
// then $XDG_CONFIG_HOME/river/init, then $HOME/.config/river/init, then
// no script at all.
package paths
