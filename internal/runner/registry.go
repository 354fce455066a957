// Package runner registers every pattern demo and runs a selection of
// them in order against one writer.
package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvpatterns/abstractfactory"
	"github.com/katalvlaran/lvpatterns/adapter"
	"github.com/katalvlaran/lvpatterns/bridge"
	"github.com/katalvlaran/lvpatterns/builder"
	"github.com/katalvlaran/lvpatterns/chain"
	"github.com/katalvlaran/lvpatterns/command"
	"github.com/katalvlaran/lvpatterns/composite"
	"github.com/katalvlaran/lvpatterns/decorator"
	"github.com/katalvlaran/lvpatterns/flyweight"
	"github.com/katalvlaran/lvpatterns/observer"
	"github.com/katalvlaran/lvpatterns/state"
)

// Sentinel errors.
var (
	// ErrUnknownDemo is returned when a requested name is not registered.
	ErrUnknownDemo = errors.New("runner: unknown demo")
	// ErrDuplicateDemo is returned when a name is registered twice.
	ErrDuplicateDemo = errors.New("runner: duplicate demo")
	// ErrInvalidDemo is returned for a demo with no name or no Run func.
	ErrInvalidDemo = errors.New("runner: demo needs a name and a Run func")
)

// Demo is one runnable example.
type Demo struct {
	Name  string          // registry key, e.g. "chain"
	Title string          // banner label, e.g. "chain of responsibility"
	Run   func(io.Writer) // prints the demo to w
}

// Registry keeps demos in registration order.
type Registry struct {
	demos []Demo
	index map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds d. Title defaults to Name.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" || d.Run == nil {
		return ErrInvalidDemo
	}
	if _, dup := r.index[d.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateDemo, d.Name)
	}
	if d.Title == "" {
		d.Title = d.Name
	}
	r.index[d.Name] = len(r.demos)
	r.demos = append(r.demos, d)

	return nil
}

// Lookup returns the demo registered under name.
func (r *Registry) Lookup(name string) (Demo, bool) {
	i, ok := r.index[name]
	if !ok {
		return Demo{}, false
	}

	return r.demos[i], true
}

// Names lists registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}

	return names
}

// Demos returns a copy of the registered demos.
func (r *Registry) Demos() []Demo {
	out := make([]Demo, len(r.demos))
	copy(out, r.demos)

	return out
}

// Default returns a registry holding every demo in the collection.
func Default() *Registry {
	r := NewRegistry()
	for _, d := range []Demo{
		{Name: "abstractfactory", Title: "abstract factory", Run: abstractfactory.Demo},
		{Name: "adapter", Run: adapter.Demo},
		{Name: "bridge", Run: bridge.Demo},
		{Name: "builder", Run: builder.Demo},
		{Name: "chain", Title: "chain of responsibility", Run: chain.Demo},
		{Name: "command", Run: command.Demo},
		{Name: "composite", Run: composite.Demo},
		{Name: "decorator", Run: decorator.Demo},
		{Name: "textprocessor", Title: "decorator function composition", Run: decorator.TextProcessorDemo},
		{Name: "flyweight", Run: flyweight.Demo},
		{Name: "observer", Run: observer.Demo},
		{Name: "group", Title: "observer group", Run: observer.GroupDemo},
		{Name: "state", Run: state.Demo},
	} {
		// A failure here is a bug in the table above.
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}

	return r
}
