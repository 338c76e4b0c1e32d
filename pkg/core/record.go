package core

// Keyer is the minimal capability a record needs to live in a keyed
// collection: a stable identifier fixed at creation time.
//
// Domain records implement it independently. There is no shared base type;
// mutable fields (quantities, scores) change in place on the record itself
// while the key never does.
type Keyer[K comparable] interface {
	Key() K
}
