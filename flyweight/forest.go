package flyweight

import "io"

// Forest is an ordered list of planted trees sharing one factory.
type Forest struct {
	factory *TreeFactory
	trees   []TreeInstance
}

// NewForest returns an empty forest drawing types from factory.
// A nil factory gets a fresh one.
func NewForest(factory *TreeFactory) *Forest {
	if factory == nil {
		factory = NewTreeFactory()
	}

	return &Forest{factory: factory}
}

// Factory returns the forest's type cache.
func (f *Forest) Factory() *TreeFactory { return f.factory }

// PlantTree places a tree of the given type at (x, y).
func (f *Forest) PlantTree(name, color, texture string, x, y int) {
	t := f.factory.Get(name, color, texture)
	f.trees = append(f.trees, TreeInstance{Type: t, X: x, Y: y})
}

// Trees returns a copy of the planted instances in planting order.
func (f *Forest) Trees() []TreeInstance {
	out := make([]TreeInstance, len(f.trees))
	copy(out, f.trees)

	return out
}

// Display prints every tree in planting order.
func (f *Forest) Display(w io.Writer) {
	for _, t := range f.trees {
		t.Display(w)
	}
}

// Demo plants four trees of two distinct types and displays them.
func Demo(w io.Writer) {
	forest := NewForest(NewTreeFactory())
	forest.PlantTree("Oak", "Green", "Rough", 10, 20)
	forest.PlantTree("Pine", "Dark Green", "Smooth", 30, 40)
	forest.PlantTree("Oak", "Green", "Rough", 50, 60)
	forest.PlantTree("Pine", "Dark Green", "Smooth", 70, 80)
	forest.Display(w)
}
