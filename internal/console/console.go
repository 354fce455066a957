// Package console resolves the output destination shared by every pattern
// package. A nil writer means standard output.
package console

import (
	"fmt"
	"io"
	"os"
)

// Out returns w, or os.Stdout when w is nil.
func Out(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Println writes a single line composed of a to w (nil → stdout).
// Write errors are dropped: demo output is best-effort, like fmt.Println.
func Println(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(Out(w), a...)
}

// Printf writes a formatted line to w (nil → stdout) and appends a newline.
func Printf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(Out(w), format+"\n", a...)
}
