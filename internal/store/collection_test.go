package store

import (
	"errors"
	"sync"
	"testing"
)

type item struct {
	ID    string
	Name  string
	Value int
}

func newItems() *Collection[item] {
	return NewCollection(func(i *item) *string { return &i.ID })
}

func TestInsertAssignsID(t *testing.T) {
	c := newItems()
	stored := c.Insert(item{Name: "a"})
	if stored.ID == "" {
		t.Fatal("Insert() did not assign an ID")
	}
	kept := c.Insert(item{ID: "fixed", Name: "b"})
	if kept.ID != "fixed" {
		t.Errorf("Insert() replaced existing ID with %q", kept.ID)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", c.Len())
	}
}

func TestGetAndDelete(t *testing.T) {
	c := newItems()
	stored := c.Insert(item{Name: "a"})

	got, err := c.Get(stored.ID)
	if err != nil || got.Name != "a" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}
	if err := c.Delete(stored.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := c.Get(stored.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, expected ErrNotFound", err)
	}
	if err := c.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestUpsert(t *testing.T) {
	c := newItems()
	first := c.Insert(item{Name: "a", Value: 1})
	c.Insert(item{Name: "b", Value: 2})

	byName := func(name string) func(item) bool {
		return func(i item) bool { return i.Name == name }
	}

	stored, replaced := c.Upsert(byName("a"), item{Name: "a", Value: 10})
	if !replaced {
		t.Fatal("Upsert() expected to replace")
	}
	if stored.ID != first.ID {
		t.Errorf("Upsert() changed ID from %s to %s", first.ID, stored.ID)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d after replace, expected 2", c.Len())
	}
	all := c.All()
	if all[0].Value != 10 {
		t.Errorf("replaced record kept position 0 with value %d", all[0].Value)
	}

	_, replaced = c.Upsert(byName("c"), item{Name: "c"})
	if replaced || c.Len() != 3 {
		t.Errorf("Upsert() of new record replaced=%v len=%d", replaced, c.Len())
	}
}

func TestUpdate(t *testing.T) {
	c := newItems()
	stored := c.Insert(item{Name: "a"})

	updated, err := c.Update(stored.ID, func(i *item) error {
		i.Value = 5
		i.ID = "hijack"
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != stored.ID || updated.Value != 5 {
		t.Errorf("Update() = %+v", updated)
	}

	boom := errors.New("boom")
	if _, err := c.Update(stored.ID, func(*item) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Update() error = %v, expected boom", err)
	}
	got, _ := c.Get(stored.ID)
	if got.Value != 5 {
		t.Error("failed update must not change the record")
	}
	if _, err := c.Update("missing", func(*item) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := newItems()
	c.Insert(item{Name: "a"})
	all := c.All()
	all[0].Name = "changed"
	if got := c.All()[0].Name; got != "a" {
		t.Errorf("mutating All() result changed the collection to %q", got)
	}
}

func TestConcurrentInsert(t *testing.T) {
	c := newItems()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			c.Insert(item{Value: v})
		}(i)
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Errorf("Len() = %d, expected 50", c.Len())
	}
}
