package collection

// Linear is an ordered sequence of records searched and removed by predicate
// with first-match semantics. Insertion order is preserved and observable.
//
// Unlike Keyed, absence here is not an error path: callers probe for
// existence before deciding what to do, so lookups report an ok bool.
type Linear[V any] struct {
	items []V
}

// NewLinear creates an empty linear collection.
func NewLinear[V any]() *Linear[V] {
	return &Linear[V]{}
}

// Add appends a record unconditionally.
func (r *Linear[V]) Add(value V) {
	r.items = append(r.items, value)
}

// FindFirst returns the first record (in insertion order) satisfying the
// predicate. The second return is false when nothing matches.
func (r *Linear[V]) FindFirst(match func(V) bool) (V, bool) {
	for _, value := range r.items {
		if match(value) {
			return value, true
		}
	}

	var zero V
	return zero, false
}

// RemoveFirst removes the first record satisfying the predicate and reports
// whether a match was found.
func (r *Linear[V]) RemoveFirst(match func(V) bool) bool {
	for i, value := range r.items {
		if match(value) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the live sequence in insertion order. Callers must treat it
// as read-only; it is the same slice a later Build snapshot consumes.
func (r *Linear[V]) List() []V {
	return r.items
}

// Len reports the number of stored records.
func (r *Linear[V]) Len() int {
	return len(r.items)
}
