package memdb

import (
	"fmt"
	"testing"
)

type record struct {
	ID   uint64
	Name string
}

func TestCollectionInsertAssignsIncreasingIds(t *testing.T) {
	c := NewCollection[*record]()

	for i := 1; i <= 5; i++ {
		r := c.Insert(func(id uint64) *record {
			return &record{ID: id, Name: fmt.Sprintf("r%d", i)}
		})
		if r.ID != uint64(i) {
			t.Fatalf("expected id %d, got %d", i, r.ID)
		}
	}
	if c.Len() != 5 {
		t.Errorf("expected 5 records, got %d", c.Len())
	}
}

func TestCollectionGet(t *testing.T) {
	c := NewCollection[*record]()
	c.Insert(func(id uint64) *record { return &record{ID: id, Name: "a"} })

	got, ok := c.Get(1)
	if !ok || got.Name != "a" {
		t.Fatalf("expected record a, got %+v ok=%v", got, ok)
	}

	if _, ok := c.Get(99); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestCollectionReplace(t *testing.T) {
	c := NewCollection[*record]()
	c.Insert(func(id uint64) *record { return &record{ID: id, Name: "old"} })

	if ok := c.Replace(1, &record{ID: 1, Name: "new"}); !ok {
		t.Fatal("replace of existing id failed")
	}
	got, _ := c.Get(1)
	if got.Name != "new" {
		t.Errorf("expected replaced record, got %+v", got)
	}

	// 未知 id 不允许隐式创建
	if ok := c.Replace(99, &record{ID: 99}); ok {
		t.Error("replace of unknown id should fail")
	}
	if c.Len() != 1 {
		t.Errorf("replace of unknown id changed size to %d", c.Len())
	}
}

func TestCollectionFindInsertionOrder(t *testing.T) {
	c := NewCollection[*record]()
	c.Insert(func(id uint64) *record { return &record{ID: id, Name: "dup"} })
	c.Insert(func(id uint64) *record { return &record{ID: id, Name: "dup"} })

	got, ok := c.Find(func(r *record) bool { return r.Name == "dup" })
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID != 1 {
		t.Errorf("expected first inserted record, got id %d", got.ID)
	}

	if _, ok := c.Find(func(r *record) bool { return r.Name == "none" }); ok {
		t.Error("expected no match")
	}
}

func TestTable(t *testing.T) {
	type key struct {
		A uint64
		B string
	}
	tb := NewTable[key, string]()

	tb.Put(key{1, "x"}, "v1")
	tb.Put(key{1, "y"}, "v2")
	tb.Put(key{1, "x"}, "v3")

	if got, ok := tb.Get(key{1, "x"}); !ok || got != "v3" {
		t.Errorf("expected v3, got %q ok=%v", got, ok)
	}
	if _, ok := tb.Get(key{2, "x"}); ok {
		t.Error("expected miss for unknown key")
	}
	if tb.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", tb.Len())
	}
	if len(tb.Keys()) != 2 {
		t.Errorf("expected 2 keys, got %d", len(tb.Keys()))
	}
}
