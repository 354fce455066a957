package flyweight

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Tree is anything displayable at a position.
type Tree interface {
	Display(w io.Writer, x, y int)
}

// TreeType is the shared intrinsic state. It is immutable after creation.
type TreeType struct {
	name    string
	color   string
	texture string
}

// Name returns the tree type name.
func (t *TreeType) Name() string { return t.name }

// Color returns the tree type color.
func (t *TreeType) Color() string { return t.color }

// Texture returns the tree type texture.
func (t *TreeType) Texture() string { return t.texture }

// Display prints the type together with the given coordinates.
func (t *TreeType) Display(w io.Writer, x, y int) {
	console.Printf(w, "Displaying tree of type: %s with color %s and texture %s at (%d, %d)",
		t.name, t.color, t.texture, x, y)
}

// TreeInstance pairs a shared type with its own coordinates.
type TreeInstance struct {
	Type *TreeType
	X, Y int
}

// Display prints the instance through its shared type.
func (ti TreeInstance) Display(w io.Writer) {
	ti.Type.Display(w, ti.X, ti.Y)
}

var _ Tree = (*TreeType)(nil)
