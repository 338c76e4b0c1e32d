package croft

import (
	"github.com/aretw0/croft/pkg/collection"
	"github.com/aretw0/croft/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Keyed is a public alias for the keyed collection.
type Keyed[K comparable, V core.Keyer[K]] = collection.Keyed[K, V]

// Linear is a public alias for the ordered linear collection.
type Linear[V any] = collection.Linear[V]

// Grouping is a public alias for the derived grouping index.
type Grouping[K comparable, V any] = collection.Grouping[K, V]

// Keyer is the capability a record needs to live in a Keyed collection.
type Keyer[K comparable] = core.Keyer[K]

// MalformedRecordError is a public alias for the per-line import diagnostic.
type MalformedRecordError = core.MalformedRecordError

// --- Errors ---

// The four error kinds governing collection and import operations.
var (
	ErrDuplicateKey    = core.ErrDuplicateKey
	ErrNotFound        = core.ErrNotFound
	ErrInvalidValue    = core.ErrInvalidValue
	ErrMalformedRecord = core.ErrMalformedRecord
)

// --- Factories ---

// NewKeyed creates an empty keyed collection.
func NewKeyed[K comparable, V core.Keyer[K]]() *Keyed[K, V] {
	return collection.NewKeyed[K, V]()
}

// NewLinear creates an empty linear collection.
func NewLinear[V any]() *Linear[V] {
	return collection.NewLinear[V]()
}

// NewGrouping creates an empty grouping index.
func NewGrouping[K comparable, V any]() *Grouping[K, V] {
	return collection.NewGrouping[K, V]()
}
