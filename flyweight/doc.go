// Package flyweight implements the Flyweight pattern with trees in a forest.
//
// Intrinsic state (name, color, texture) lives in a shared, immutable
// TreeType. Extrinsic state (x, y) lives in each TreeInstance. A
// TreeFactory caches TreeTypes by the (name, color, texture) triple: the first
// request for a key constructs and inserts, later requests return the same
// pointer. Entries are never evicted; the cache lives as long as the
// factory that owns it.
//
// The factory is an explicit value, typically owned by a Forest, rather
// than package-level state, so tests and callers control its lifetime.
//
// Thread safety:
//
//   - TreeFactory.Get and TreeFactory.Len are safe for concurrent use.
//   - Forest is not.
package flyweight
