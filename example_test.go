package croft_test

import (
	"errors"
	"fmt"

	"github.com/aretw0/croft"
)

type product struct {
	ID   int
	Name string
}

func (p *product) Key() int { return p.ID }

// Example_keyed demonstrates the duplicate and not-found semantics of the
// keyed collection.
func Example_keyed() {
	repo := croft.NewKeyed[int, *product]()

	_ = repo.Add(&product{ID: 1, Name: "anvil"})

	// A second record under the same key is rejected without side effects.
	err := repo.Add(&product{ID: 1, Name: "impostor"})
	fmt.Println(errors.Is(err, croft.ErrDuplicateKey))

	stored, _ := repo.Get(1)
	fmt.Println(stored.Name)

	_, err = repo.Get(99)
	fmt.Println(errors.Is(err, croft.ErrNotFound))

	// Output:
	// true
	// anvil
	// true
}

// Example_grouping demonstrates the explicit build-then-lookup discipline of
// the grouping index.
func Example_grouping() {
	type visit struct {
		ID        int
		PatientID int
	}

	visits := []visit{
		{ID: 1, PatientID: 7},
		{ID: 2, PatientID: 9},
		{ID: 3, PatientID: 7},
	}

	idx := croft.NewGrouping[int, visit]()
	idx.Build(visits, func(v visit) int { return v.PatientID })

	for _, v := range idx.Lookup(7) {
		fmt.Println(v.ID)
	}

	// Output:
	// 1
	// 3
}
