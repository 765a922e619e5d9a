// internal/inventory/implementation.go
package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface. It owns the in-memory
// mapping and the id counter; both are guarded by a single mutex since
// the HTTP dispatcher serves requests concurrently. Records stored in
// the mapping are never handed out: every operation returns a snapshot
// taken under the lock, so callers can encode results while writers
// keep mutating the stored state.
type service struct {
	mu     sync.Mutex
	items  map[int]*Item
	nextID int

	tracer       trace.Tracer
	itemsCreated metric.Int64Counter
	itemsDeleted metric.Int64Counter
}

// NewService creates an empty inventory service. The store lives for
// the lifetime of the process and is never persisted.
func NewService() Service {
	meter := otel.Meter("itemstore/inventory")
	created, _ := meter.Int64Counter("inventory.items.created")
	deleted, _ := meter.Int64Counter("inventory.items.deleted")

	return &service{
		items:        make(map[int]*Item),
		nextID:       1,
		tracer:       otel.Tracer("itemstore/inventory"),
		itemsCreated: created,
		itemsDeleted: deleted,
	}
}

// ListItems returns all items ordered by ascending id, which matches
// insertion order because ids are assigned monotonically.
func (s *service) ListItems(ctx context.Context) []*Item {
	_, span := s.tracer.Start(ctx, "inventory.list")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.clone())
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	span.SetAttributes(attribute.Int("item.count", len(items)))
	return items
}

// GetItem retrieves an item by its id.
func (s *service) GetItem(ctx context.Context, id int) (*Item, error) {
	_, span := s.tracer.Start(ctx, "inventory.get",
		trace.WithAttributes(attribute.Int("item.id", id)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item.clone(), nil
}

// CreateItem validates the draft, assigns the next id and inserts the
// record. Ids strictly increase and are never reused, even after deletes.
func (s *service) CreateItem(ctx context.Context, draft ItemDraft) (*Item, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.create")
	defer span.End()

	if draft.Name == nil || *draft.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if draft.Price == nil {
		return nil, fmt.Errorf("%w: price is required", ErrInvalidItem)
	}

	item := &Item{
		Name:        *draft.Name,
		Description: draft.Description,
		Price:       *draft.Price,
	}
	if draft.Quantity != nil {
		item.Quantity = *draft.Quantity
	}

	s.mu.Lock()
	item.ID = s.nextID
	s.nextID++
	s.items[item.ID] = item.clone()
	s.mu.Unlock()

	s.itemsCreated.Add(ctx, 1)
	span.SetAttributes(attribute.Int("item.id", item.ID))
	return item, nil
}

// UpdateItem overwrites exactly the fields present in the patch and
// leaves the rest unchanged. The id itself cannot be altered.
func (s *service) UpdateItem(ctx context.Context, id int, patch ItemPatch) (*Item, error) {
	_, span := s.tracer.Start(ctx, "inventory.update",
		trace.WithAttributes(attribute.Int("item.id", id)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}

	return item.clone(), nil
}

// DeleteItem removes the record and returns it. The id is retired for
// good; the counter never moves backwards.
func (s *service) DeleteItem(ctx context.Context, id int) (*Item, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.delete",
		trace.WithAttributes(attribute.Int("item.id", id)),
	)
	defer span.End()

	s.mu.Lock()
	item, ok := s.items[id]
	if ok {
		delete(s.items, id)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrItemNotFound
	}

	s.itemsDeleted.Add(ctx, 1)
	return item.clone(), nil
}
