//go:build !linux

package terminal

// resetTerminalMode relies on tcell's own teardown outside Linux
func resetTerminalMode() {}
