// Package store owns the session-scoped data the panel works on: the
// resolved user and the fetched category collection.
package store

import (
	"sort"

	"category-admin/internal/api"
)

// Session holds the current user and category collection. It is the
// single source of truth the UI renders from; all mutation goes through
// its methods.
type Session struct {
	user       *api.User
	categories []api.Category
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Reset clears the user and collection, e.g. when the identity changes.
func (s *Session) Reset() {
	s.user = nil
	s.categories = nil
}

// SetUser stores the resolved user for the session.
func (s *Session) SetUser(user api.User) {
	u := user
	s.user = &u
}

// User returns the session user, or nil before a successful lookup.
func (s *Session) User() *api.User {
	return s.user
}

// SetCategories replaces the collection.
func (s *Session) SetCategories(categories []api.Category) {
	s.categories = cloneCategories(categories)
}

// Categories returns the collection in insertion order.
func (s *Session) Categories() []api.Category {
	return cloneCategories(s.categories)
}

// Sorted returns the collection ordered by ascending order index. The
// sort is stable, so entries sharing an index keep their insertion order.
func (s *Session) Sorted() []api.Category {
	sorted := cloneCategories(s.categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}

// Prepend inserts a newly created category at the front of the collection.
func (s *Session) Prepend(category api.Category) {
	s.categories = append([]api.Category{category}, s.categories...)
}

// Replace swaps the entry sharing the category's id, leaving every other
// entry untouched. It reports whether a match was found.
func (s *Session) Replace(category api.Category) bool {
	for i, existing := range s.categories {
		if existing.ID == category.ID {
			s.categories[i] = category
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given id and reports whether it was
// present.
func (s *Session) Remove(id string) bool {
	for i, existing := range s.categories {
		if existing.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the category with the given id.
func (s *Session) Find(id string) (api.Category, bool) {
	for _, existing := range s.categories {
		if existing.ID == id {
			return existing, true
		}
	}
	return api.Category{}, false
}

func cloneCategories(categories []api.Category) []api.Category {
	if len(categories) == 0 {
		return nil
	}
	dup := make([]api.Category, len(categories))
	copy(dup, categories)
	return dup
}
