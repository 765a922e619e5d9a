// internal/inventory/domain.go
package inventory

import "errors"

var (
	// ErrItemNotFound is returned when the referenced id is absent from the store.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidItem is returned when a create payload is missing a required field.
	ErrInvalidItem = errors.New("invalid item")
)

// Item is a record held by the store. Description stays a pointer so an
// unset description serializes as JSON null.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// clone returns a snapshot of the item. The store only ever hands out
// snapshots so callers can read them without holding the store lock.
func (it *Item) clone() *Item {
	out := *it
	if it.Description != nil {
		desc := *it.Description
		out.Description = &desc
	}
	return &out
}

// ItemDraft is the create payload. Required fields are pointers so that
// a missing field is distinguishable from a zero value.
type ItemDraft struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// ItemPatch is the partial-update payload. Only fields present in the
// request overwrite stored state; a nil pointer means "leave unchanged".
// A JSON null also decodes to nil, so null and absent are equivalent.
type ItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}
