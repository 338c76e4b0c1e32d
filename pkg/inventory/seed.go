package inventory

import (
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/croft/pkg/core"
)

// Electronics is the fixed catalog for the electronics variant of the demo.
func Electronics() []*Item {
	return []*Item{
		{ID: 1, Name: "Laptop", Quantity: 10},
		{ID: 2, Name: "Smartphone", Quantity: 25},
		{ID: 3, Name: "Headphones", Quantity: 40},
		{ID: 4, Name: "Monitor", Quantity: 8},
		{ID: 5, Name: "Keyboard", Quantity: 30},
	}
}

// Grocery is the fixed catalog for the grocery variant of the demo.
func Grocery() []*Item {
	return []*Item{
		{ID: 1, Name: "Rice 1kg", Quantity: 120},
		{ID: 2, Name: "Olive Oil", Quantity: 35},
		{ID: 3, Name: "Coffee Beans", Quantity: 50},
		{ID: 4, Name: "Pasta", Quantity: 80},
		{ID: 5, Name: "Tomato Sauce", Quantity: 64},
	}
}

// Seed loads a catalog into the manager. Records that fail (duplicates,
// malformed entries) are logged and skipped; seeding continues. It returns
// the number of items actually added.
func (m *Manager) Seed(catalog []*Item) int {
	added := 0
	for _, item := range catalog {
		if err := m.Add(item); err != nil {
			m.logger.Warn("skipping seed item", "variant", m.variant, "id", item.ID, "error", err)
			continue
		}
		added++
	}

	m.logger.Debug("catalog seeded", "variant", m.variant, "added", added)
	return added
}

// SeedRandom fills the manager with n generated items. Useful for stress
// demos and tests where the exact catalog does not matter.
func (m *Manager) SeedRandom(n int) int {
	catalog := make([]*Item, 0, n)
	for i := 1; i <= n; i++ {
		catalog = append(catalog, &Item{
			ID:       i,
			Name:     gofakeit.ProductName(),
			Quantity: gofakeit.Number(0, 200),
		})
	}
	return m.Seed(catalog)
}

// LoadCatalog reads a YAML catalog file and returns its items. Entries that
// fail validation are reported as MalformedRecordError values (1-based
// position) and skipped; an unreadable or unparsable file is fatal to the
// load, matching the import policy for bulk input.
func LoadCatalog(path string) ([]*Item, []error, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []Item
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var (
		items   []*Item
		skipped []error
	)
	for i := range entries {
		item := entries[i]
		if err := core.CheckImportedRecord(&item, i+1); err != nil {
			skipped = append(skipped, err)
			continue
		}
		items = append(items, &item)
	}
	return items, skipped, nil
}
