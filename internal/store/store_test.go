package store

import (
	"testing"

	"category-admin/internal/api"
)

func sampleCategories() []api.Category {
	return []api.Category{
		{ID: "c-1", NameUz: "Mevalar", OrderIndex: 3},
		{ID: "c-2", NameUz: "Sabzavotlar", OrderIndex: 1},
		{ID: "c-3", NameUz: "Ichimliklar", OrderIndex: 2},
	}
}

func TestSortedOrdersByOrderIndex(t *testing.T) {
	s := NewSession()
	s.SetCategories(sampleCategories())

	sorted := s.Sorted()
	want := []string{"c-2", "c-3", "c-1"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}
}

func TestSortedIsStableForEqualIndexes(t *testing.T) {
	s := NewSession()
	s.SetCategories([]api.Category{
		{ID: "a", OrderIndex: 1},
		{ID: "b", OrderIndex: 1},
		{ID: "c", OrderIndex: 0},
	})

	sorted := s.Sorted()
	if sorted[0].ID != "c" || sorted[1].ID != "a" || sorted[2].ID != "b" {
		t.Fatalf("unexpected order: %s %s %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
}

func TestSortedDoesNotMutateCollection(t *testing.T) {
	s := NewSession()
	s.SetCategories(sampleCategories())

	_ = s.Sorted()
	got := s.Categories()
	if got[0].ID != "c-1" {
		t.Fatalf("insertion order lost: first entry is %s", got[0].ID)
	}
}

func TestPrependPutsNewEntryFirst(t *testing.T) {
	s := NewSession()
	s.SetCategories(sampleCategories())

	s.Prepend(api.Category{ID: "c-new", OrderIndex: 99})
	got := s.Categories()
	if len(got) != 4 || got[0].ID != "c-new" {
		t.Fatalf("expected prepended entry first, got %+v", got)
	}
}

func TestReplaceSwapsMatchingEntryOnly(t *testing.T) {
	s := NewSession()
	s.SetCategories(sampleCategories())

	if !s.Replace(api.Category{ID: "c-3", NameUz: "Yangilangan", OrderIndex: 2}) {
		t.Fatalf("expected replace to report a match")
	}
	got, ok := s.Find("c-3")
	if !ok || got.NameUz != "Yangilangan" {
		t.Fatalf("entry not replaced: %+v", got)
	}
	if other, _ := s.Find("c-1"); other.NameUz != "Mevalar" {
		t.Fatalf("unrelated entry mutated: %+v", other)
	}
}

func TestReplaceReportsMissingEntry(t *testing.T) {
	s := NewSession()
	s.SetCategories(sampleCategories())

	if s.Replace(api.Category{ID: "ghost"}) {
		t.Fatalf("expected no match for unknown id")
	}
	if len(s.Categories()) != 3 {
		t.Fatalf("collection length changed on failed replace")
	}
}

func TestRemove(t *testing.T) {
	s := NewSession()
	s.SetCategories(sampleCategories())

	if !s.Remove("c-2") {
		t.Fatalf("expected remove to report a match")
	}
	if s.Remove("c-2") {
		t.Fatalf("second remove of same id must report false")
	}
	if _, ok := s.Find("c-2"); ok {
		t.Fatalf("entry still present after remove")
	}
	if len(s.Categories()) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.Categories()))
	}
}

func TestResetClearsUserAndCollection(t *testing.T) {
	s := NewSession()
	s.SetUser(api.User{ID: "u-1", Status: api.UserConfirmed})
	s.SetCategories(sampleCategories())

	s.Reset()
	if s.User() != nil {
		t.Fatalf("user survived reset")
	}
	if len(s.Categories()) != 0 {
		t.Fatalf("categories survived reset")
	}
}

func TestSetCategoriesClonesInput(t *testing.T) {
	input := sampleCategories()
	s := NewSession()
	s.SetCategories(input)

	input[0].NameUz = "mutated"
	got, _ := s.Find("c-1")
	if got.NameUz != "Mevalar" {
		t.Fatalf("session aliased caller slice: %+v", got)
	}
}
