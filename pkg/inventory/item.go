// Package inventory implements the warehouse demo: a keyed catalog of stock
// items with uniqueness enforcement and quantity updates.
package inventory

import "fmt"

// Item is a single stock line. The ID is fixed at creation; Quantity is the
// mutable field interactive updates touch.
type Item struct {
	ID       int    `yaml:"id" validate:"required,gt=0"`
	Name     string `yaml:"name" validate:"required"`
	Quantity int    `yaml:"quantity" validate:"gte=0"`
}

// Key implements core.Keyer.
func (i *Item) Key() int { return i.ID }

func (i *Item) String() string {
	return fmt.Sprintf("#%d %s (qty %d)", i.ID, i.Name, i.Quantity)
}
