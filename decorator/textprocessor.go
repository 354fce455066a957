package decorator

import (
	"io"
	"strings"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Transform is one step of a TextProcessor.
type Transform func(string) string

// TextProcessor applies its transforms left to right.
type TextProcessor struct {
	fn Transform
}

// NewTextProcessor composes steps in order. Nil steps are skipped.
func NewTextProcessor(steps ...Transform) *TextProcessor {
	fn := Transform(func(s string) string { return s })
	for _, step := range steps {
		if step == nil {
			continue
		}
		prev, next := fn, step
		fn = func(s string) string { return next(prev(s)) }
	}

	return &TextProcessor{fn: fn}
}

// Process runs input through every step.
func (p *TextProcessor) Process(input string) string {
	return p.fn(input)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

// TextProcessorDemo upper-cases then reverses "hello".
func TextProcessorDemo(w io.Writer) {
	p := NewTextProcessor(strings.ToUpper, Reverse)
	console.Println(w, p.Process("hello"))
}
