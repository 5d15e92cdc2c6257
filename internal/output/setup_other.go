//go:build !windows

package output

// Setup is a no-op: other terminals understand ANSI escape sequences.
func Setup() {}
