package game

import "io"

// Config holds game configuration options.
type Config struct {
	// Input is the source of menu choices. Nil means os.Stdin.
	Input io.Reader
	// Output receives menus, status, and action text. Nil means os.Stdout.
	Output io.Writer
}
