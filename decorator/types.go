package decorator

// Coffee is the decorated capability.
type Coffee interface {
	Cost() int
	Description() string
}

// Base price and augmentations.
const (
	SimpleCost       = 50
	ExtraCreamCost   = 20
	ExtraMilkCost    = 10
	SimpleName       = "Simple coffee"
	ExtraCreamSuffix = " with extra cream"
	ExtraMilkSuffix  = " with extra milk"
)

// SimpleCoffee is the undecorated base.
type SimpleCoffee struct{}

// Cost implements Coffee.
func (SimpleCoffee) Cost() int { return SimpleCost }

// Description implements Coffee.
func (SimpleCoffee) Description() string { return SimpleName }
