package collection_test

import (
	"errors"
	"testing"

	"github.com/aretw0/croft/pkg/collection"
	"github.com/aretw0/croft/pkg/core"
)

type widget struct {
	ID    int
	Name  string
	Count int
}

func (w *widget) Key() int { return w.ID }

func TestKeyed_AddGet(t *testing.T) {
	repo := collection.NewKeyed[int, *widget]()

	w := &widget{ID: 1, Name: "anvil", Count: 10}
	if err := repo.Add(w); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := repo.Get(1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != w {
		t.Errorf("Get returned a different handle: %+v", got)
	}

	// Mutations through the handle must be visible to the collection.
	got.Count = 42
	again, _ := repo.Get(1)
	if again.Count != 42 {
		t.Errorf("expected mutation to be visible, got Count=%d", again.Count)
	}
}

func TestKeyed_DuplicateKey(t *testing.T) {
	repo := collection.NewKeyed[int, *widget]()

	original := &widget{ID: 1, Name: "anvil"}
	if err := repo.Add(original); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := repo.Add(&widget{ID: 1, Name: "impostor"})
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	// Failure must leave the stored record unchanged.
	got, _ := repo.Get(1)
	if got.Name != "anvil" {
		t.Errorf("stored record changed on failed Add: %+v", got)
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 record, got %d", repo.Len())
	}
}

func TestKeyed_NotFound(t *testing.T) {
	repo := collection.NewKeyed[int, *widget]()

	if _, err := repo.Get(999); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Remove(999); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Remove: expected ErrNotFound, got %v", err)
	}
	err := repo.Update(999, func(w *widget) { w.Count = 1 })
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
}

func TestKeyed_Remove(t *testing.T) {
	repo := collection.NewKeyed[int, *widget]()
	_ = repo.Add(&widget{ID: 1})
	_ = repo.Add(&widget{ID: 2})

	if err := repo.Remove(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := repo.Get(1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected removed record to be gone, got %v", err)
	}

	// Removing frees the key for reuse.
	if err := repo.Add(&widget{ID: 1, Name: "fresh"}); err != nil {
		t.Errorf("re-Add after Remove failed: %v", err)
	}
}

func TestKeyed_ListInsertionOrder(t *testing.T) {
	repo := collection.NewKeyed[int, *widget]()
	ids := []int{7, 3, 9, 1}
	for _, id := range ids {
		_ = repo.Add(&widget{ID: id})
	}

	list := repo.List()
	if len(list) != len(ids) {
		t.Fatalf("expected %d records, got %d", len(ids), len(list))
	}
	for i, w := range list {
		if w.ID != ids[i] {
			t.Errorf("position %d: expected ID %d, got %d", i, ids[i], w.ID)
		}
	}

	// Order survives a removal in the middle.
	_ = repo.Remove(3)
	list = repo.List()
	want := []int{7, 9, 1}
	for i, w := range list {
		if w.ID != want[i] {
			t.Errorf("after Remove, position %d: expected ID %d, got %d", i, want[i], w.ID)
		}
	}
}

func TestKeyed_Update(t *testing.T) {
	repo := collection.NewKeyed[int, *widget]()
	_ = repo.Add(&widget{ID: 1, Count: 5})

	if err := repo.Update(1, func(w *widget) { w.Count = 20 }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := repo.Get(1)
	if got.Count != 20 {
		t.Errorf("expected Count=20, got %d", got.Count)
	}
}
