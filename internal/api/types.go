package api

import "strings"

// UserStatus is the moderation state of a panel user.
type UserStatus string

const (
	UserConfirmed UserStatus = "CONFIRMED"
	UserPending   UserStatus = "PENDING"
	UserRejected  UserStatus = "REJECTED"
)

// User is the backend account record resolved from a chat identifier.
// It is fetched once per session and never mutated by the panel.
type User struct {
	ID        string     `json:"id"`
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	EventCode string     `json:"eventCode"`
	Username  string     `json:"username"`
	ChatID    int64      `json:"chatId"`
	Status    UserStatus `json:"status"`
}

// CategoryStatus is the lifecycle state of a category record.
type CategoryStatus string

const (
	CategoryOpen     CategoryStatus = "OPEN"
	CategoryDeleted  CategoryStatus = "DELETED"
	CategoryArchived CategoryStatus = "ARCHIVED"
)

// Category is a multilingual, ordered taxonomy entry owned by a chat
// identifier. ParentID is carried through but the panel renders a flat list.
type Category struct {
	ID             string         `json:"id"`
	NameUz         string         `json:"nameUz"`
	NameUzCyrillic string         `json:"nameUzCyrillic"`
	NameRu         string         `json:"nameRu"`
	NameEn         string         `json:"nameEn"`
	OrderIndex     int            `json:"orderIndex"`
	Status         CategoryStatus `json:"status"`
	ChatID         int64          `json:"chatId"`
	ParentID       *string        `json:"parentId"`
}

// SearchText returns the lowercased concatenation of all name fields,
// used for client-side substring matching.
func (c Category) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		c.NameUz, c.NameUzCyrillic, c.NameRu, c.NameEn,
	}, " "))
}

// CategoryRequest is the write-only projection of Category used for
// create and edit calls. ChatID and ParentID are optional.
type CategoryRequest struct {
	NameUz         string  `json:"nameUz"`
	NameUzCyrillic string  `json:"nameUzCyrillic"`
	NameRu         string  `json:"nameRu"`
	NameEn         string  `json:"nameEn"`
	OrderIndex     int     `json:"orderIndex"`
	ChatID         *int64  `json:"chatId,omitempty"`
	ParentID       *string `json:"parentId,omitempty"`
}

// EditProjection restricts the request to the fields an edit is allowed to
// rewrite: the four names and the order index. Identifier, status, owner,
// and parent are never resubmitted on edit.
func (r CategoryRequest) EditProjection() CategoryRequest {
	return CategoryRequest{
		NameUz:         r.NameUz,
		NameUzCyrillic: r.NameUzCyrillic,
		NameRu:         r.NameRu,
		NameEn:         r.NameEn,
		OrderIndex:     r.OrderIndex,
	}
}
