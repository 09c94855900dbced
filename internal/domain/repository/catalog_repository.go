package repository

import (
	"context"
	"errors"

	"vidgate/internal/domain/entity"
)

// ErrCatalogEmpty is returned when no item can be picked.
var ErrCatalogEmpty = errors.New("catalog empty")

// CatalogRepository selects media items and remembers what each user has seen.
type CatalogRepository interface {
	// GetUnseenItem picks a random item the user has not received yet.
	GetUnseenItem(ctx context.Context, userID int64) (*entity.ItemRef, error)

	// GetRandomItem picks any item.
	GetRandomItem(ctx context.Context) (*entity.ItemRef, error)

	// MarkSeen records that the user received the item. Repeated calls are no-ops.
	MarkSeen(ctx context.Context, userID, itemID int64) error

	// AddItem registers a new item in the catalog.
	AddItem(ctx context.Context, item *entity.ItemRef) error
}
