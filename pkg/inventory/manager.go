package inventory

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/croft/pkg/collection"
	"github.com/aretw0/croft/pkg/core"
)

// Manager owns the item catalog and enforces its domain rules: unique IDs,
// non-negative quantities. It is the single owner of its collection; see the
// collection package for the (lack of) concurrency guarantees.
type Manager struct {
	items   *collection.Keyed[int, *Item]
	logger  *slog.Logger
	variant string
}

// NewManager creates an empty inventory manager.
func NewManager(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Manager{
		items:   collection.NewKeyed[int, *Item](),
		logger:  o.logger,
		variant: o.variant,
	}
}

// Add registers a new item. A well-formed item with a taken ID fails with
// core.ErrDuplicateKey; an item violating its own constraints (zero ID,
// empty name, negative quantity) fails with core.ErrInvalidValue. Neither
// failure touches stored state.
func (m *Manager) Add(item *Item) error {
	if err := core.CheckRecord(item); err != nil {
		return fmt.Errorf("item %d: %w", item.ID, err)
	}
	return m.items.Add(item)
}

// Get returns the stored item for id, or core.ErrNotFound.
func (m *Manager) Get(id int) (*Item, error) {
	return m.items.Get(id)
}

// Remove deletes the item for id, or fails with core.ErrNotFound.
func (m *Manager) Remove(id int) error {
	return m.items.Remove(id)
}

// UpdateQuantity sets the quantity of the item stored under id.
//
// The candidate is validated first: a negative quantity fails with
// core.ErrInvalidValue before the stored record is even looked up, so a
// rejected update can never leave partial state. An unknown id then fails
// with core.ErrNotFound via the same path as Get.
func (m *Manager) UpdateQuantity(id, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity %d: %w", quantity, core.ErrInvalidValue)
	}

	return m.items.Update(id, func(item *Item) {
		item.Quantity = quantity
	})
}

// List returns all items in insertion order.
func (m *Manager) List() []*Item {
	return m.items.List()
}

// Len reports the number of stocked items.
func (m *Manager) Len() int {
	return m.items.Len()
}

// Variant returns the catalog label the manager was configured with.
func (m *Manager) Variant() string {
	return m.variant
}
