package collection

// Grouping is a derived, read-only multimap from a foreign-key field to the
// ordered subsequence of source records carrying that key.
//
// It reflects the source only as of the last Build call. There is no live
// synchronization: after mutating the source, the caller must Build again.
// Reading a stale index after an un-rebuilt mutation is a usage error on the
// caller's side, not something the index can detect.
//
// A Grouping holds handles to records owned elsewhere and is never the
// authoritative store.
type Grouping[K comparable, V any] struct {
	groups map[K][]V
}

// NewGrouping creates an empty index. Lookup on it returns nothing until the
// first Build.
func NewGrouping[K comparable, V any]() *Grouping[K, V] {
	return &Grouping[K, V]{}
}

// Build scans source once, groups records by keyOf, and replaces any
// previously built index. Each group preserves its records' relative order
// from source. The swap is atomic: the old index stays readable until the
// new one is fully constructed.
func (g *Grouping[K, V]) Build(source []V, keyOf func(V) K) {
	groups := make(map[K][]V)
	for _, value := range source {
		key := keyOf(value)
		groups[key] = append(groups[key], value)
	}
	g.groups = groups
}

// Lookup returns the group for key, possibly empty. "No such group" and
// "empty group" are indistinguishable; neither is an error.
func (g *Grouping[K, V]) Lookup(key K) []V {
	return g.groups[key]
}

// Groups reports the number of distinct keys in the index.
func (g *Grouping[K, V]) Groups() int {
	return len(g.groups)
}
