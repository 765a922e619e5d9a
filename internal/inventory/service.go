// internal/inventory/service.go
package inventory

import "context"

// Service defines the interface for the inventory service.
type Service interface {
	ListItems(ctx context.Context) []*Item
	GetItem(ctx context.Context, id int) (*Item, error)
	CreateItem(ctx context.Context, draft ItemDraft) (*Item, error)
	UpdateItem(ctx context.Context, id int, patch ItemPatch) (*Item, error)
	DeleteItem(ctx context.Context, id int) (*Item, error)
}
