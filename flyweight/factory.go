package flyweight

import "sync"

// TreeFactory caches TreeTypes by their (name, color, texture) triple.
type TreeFactory struct {
	mu    sync.Mutex
	types map[treeKey]*TreeType
}

// treeKey identifies a TreeType. Fields are compared separately, so values
// containing "-" never collide.
type treeKey struct {
	name, color, texture string
}

// NewTreeFactory returns an empty factory.
func NewTreeFactory() *TreeFactory {
	return &TreeFactory{types: make(map[treeKey]*TreeType)}
}

// Key renders a triple as "name-color-texture" for display. It is not the
// cache identity: distinct triples may render the same.
func Key(name, color, texture string) string {
	return name + "-" + color + "-" + texture
}

// Get returns the cached TreeType for the triple, creating it on a miss.
func (f *TreeFactory) Get(name, color, texture string) *TreeType {
	key := treeKey{name: name, color: color, texture: texture}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Hit: share the existing intrinsic state.
	if t, ok := f.types[key]; ok {
		return t
	}
	// Miss: construct once and keep for the factory's lifetime.
	t := &TreeType{name: name, color: color, texture: texture}
	f.types[key] = t

	return t
}

// Len reports how many distinct types have been cached.
func (f *TreeFactory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.types)
}
