package bridge_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/katalvlaran/lvpatterns/bridge"
	"github.com/stretchr/testify/assert"
)

// countingPen records calls instead of printing.
type countingPen struct{ n int }

func (p *countingPen) Draw() { p.n++ }

func TestShapes_DelegateToTheirDrawable(t *testing.T) {
	a, b := &countingPen{}, &countingPen{}
	bridge.NewCircle(a).DrawShape()
	bridge.NewSquare(b).DrawShape()
	bridge.NewSquare(b).DrawShape()
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 2, b.n)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	bridge.Demo(&buf)
	assert.Equal(t,
		"Drawing in red color\nDrawing in blue color\nDrawing in red color\nDrawing in blue color\n",
		buf.String())
}

func ExampleNewCircle() {
	bridge.NewCircle(bridge.NewBluePen(os.Stdout)).DrawShape()
	// Output: Drawing in blue color
}
