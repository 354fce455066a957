package composite

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Directory is an inner node. Children keep attachment order and may
// repeat.
type Directory struct {
	name     string
	children []Component
	out      io.Writer
}

// NewDirectory returns an empty directory called name printing to w.
func NewDirectory(w io.Writer, name string) *Directory {
	return &Directory{name: name, out: w}
}

// Name returns the directory name.
func (d *Directory) Name() string { return d.name }

// Add appends c to the children.
func (d *Directory) Add(c Component) {
	d.children = append(d.children, c)
}

// Remove drops the first child identical to c and reports whether one was
// found. Children of non-comparable types never match.
func (d *Directory) Remove(c Component) bool {
	for i, cur := range d.children {
		if sameComponent(cur, c) {
			d.children = append(d.children[:i], d.children[i+1:]...)
			return true
		}
	}

	return false
}

// sameComponent compares a and b, treating a non-comparable dynamic type
// as a mismatch instead of panicking.
func sameComponent(a, b Component) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}

// Children returns a copy of the direct children in attachment order.
func (d *Directory) Children() []Component {
	out := make([]Component, len(d.children))
	copy(out, d.children)

	return out
}

// ShowDetails prints "Directory: <name>" then each child's details.
func (d *Directory) ShowDetails() {
	console.Println(d.out, "Directory: "+d.name)
	for _, c := range d.children {
		c.ShowDetails()
	}
}

// Demo builds root{readme.md, src{main.go, util.go}, docs{}} and lists it,
// then removes src and lists again.
func Demo(w io.Writer) {
	root := NewDirectory(w, "root")
	src := NewDirectory(w, "src")
	docs := NewDirectory(w, "docs")

	root.Add(NewFile(w, "readme.md"))
	src.Add(NewFile(w, "main.go"))
	src.Add(NewFile(w, "util.go"))
	root.Add(src)
	root.Add(docs)

	root.ShowDetails()
	root.Remove(src)
	root.ShowDetails()
}
