// Package bridge implements the Bridge pattern: shapes (the abstraction)
// draw through a Drawable (the implementation) supplied at construction,
// so any shape pairs with any drawable without a subtype per combination.
package bridge

import (
	"io"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Drawable is the implementation side.
type Drawable interface {
	Draw()
}

// Shape is the abstraction side.
type Shape interface {
	DrawShape()
}

// RedPen draws in red.
type RedPen struct{ out io.Writer }

// BluePen draws in blue.
type BluePen struct{ out io.Writer }

// NewRedPen returns a RedPen printing to w (nil → stdout).
func NewRedPen(w io.Writer) RedPen { return RedPen{out: w} }

// NewBluePen returns a BluePen printing to w (nil → stdout).
func NewBluePen(w io.Writer) BluePen { return BluePen{out: w} }

// Draw implements Drawable.
func (p RedPen) Draw() { console.Println(p.out, "Drawing in red color") }

// Draw implements Drawable.
func (p BluePen) Draw() { console.Println(p.out, "Drawing in blue color") }

// Circle delegates drawing to its Drawable.
type Circle struct{ drawable Drawable }

// Square delegates drawing to its Drawable.
type Square struct{ drawable Drawable }

// NewCircle returns a circle drawn by d.
func NewCircle(d Drawable) Circle { return Circle{drawable: d} }

// NewSquare returns a square drawn by d.
func NewSquare(d Drawable) Square { return Square{drawable: d} }

// DrawShape implements Shape.
func (c Circle) DrawShape() { c.drawable.Draw() }

// DrawShape implements Shape.
func (s Square) DrawShape() { s.drawable.Draw() }

// Demo draws every shape with every pen.
func Demo(w io.Writer) {
	shapes := []Shape{
		NewCircle(NewRedPen(w)),
		NewCircle(NewBluePen(w)),
		NewSquare(NewRedPen(w)),
		NewSquare(NewBluePen(w)),
	}
	for _, s := range shapes {
		s.DrawShape()
	}
}
