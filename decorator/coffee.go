package decorator

import (
	"io"
	"strconv"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// layer forwards to the wrapped coffee. Concrete decorators embed it and
// override what they augment.
type layer struct {
	inner Coffee
}

func (l layer) Cost() int           { return l.inner.Cost() }
func (l layer) Description() string { return l.inner.Description() }

// ExtraCream adds cream.
type ExtraCream struct{ layer }

// ExtraMilk adds milk.
type ExtraMilk struct{ layer }

// NewExtraCream wraps c.
func NewExtraCream(c Coffee) ExtraCream { return ExtraCream{layer{inner: c}} }

// NewExtraMilk wraps c.
func NewExtraMilk(c Coffee) ExtraMilk { return ExtraMilk{layer{inner: c}} }

// Cost is the wrapped cost plus ExtraCreamCost.
func (d ExtraCream) Cost() int { return d.layer.Cost() + ExtraCreamCost }

// Description appends ExtraCreamSuffix.
func (d ExtraCream) Description() string { return d.layer.Description() + ExtraCreamSuffix }

// Cost is the wrapped cost plus ExtraMilkCost.
func (d ExtraMilk) Cost() int { return d.layer.Cost() + ExtraMilkCost }

// Description appends ExtraMilkSuffix.
func (d ExtraMilk) Description() string { return d.layer.Description() + ExtraMilkSuffix }

// Demo prints a plain coffee price, then milk-over-cream description and cost.
func Demo(w io.Writer) {
	var simple Coffee = SimpleCoffee{}
	console.Println(w, "Simple coffee price "+strconv.Itoa(simple.Cost()))
	adv := NewExtraMilk(NewExtraCream(simple))
	console.Println(w, adv.Description())
	console.Println(w, "Cost of coffee "+strconv.Itoa(adv.Cost()))
}
