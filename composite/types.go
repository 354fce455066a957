// Package composite implements the Composite pattern as a tiny file system
// tree. Directory.ShowDetails prints a depth-first pre-order listing.
package composite

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Component is anything that can describe itself in the tree.
type Component interface {
	ShowDetails()
}

// File is a leaf.
type File struct {
	name string
	out  io.Writer
}

// NewFile returns a leaf called name printing to w (nil → stdout).
func NewFile(w io.Writer, name string) *File {
	return &File{name: name, out: w}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// ShowDetails prints "File: <name>".
func (f *File) ShowDetails() {
	console.Println(f.out, "File: "+f.name)
}
