package links

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, link *Link) (*Link, error)
	GetByID(ctx context.Context, id string) (*Link, error)

	// ListByUser returns the owner's links sorted ascending by SortOrder,
	// ties broken by creation time.
	ListByUser(ctx context.Context, userID string) ([]*Link, error)

	// ListVisibleByUser is ListByUser restricted to Visible links.
	ListVisibleByUser(ctx context.Context, userID string) ([]*Link, error)

	// MaxOrder returns the highest SortOrder among the owner's links,
	// or -1 when the owner has none.
	MaxOrder(ctx context.Context, userID string) (int, error)

	Update(ctx context.Context, link *Link) error

	// ReplaceOrders assigns SortOrder = position-in-ids to each of the
	// owner's links, stamping updatedAt. The write is all-or-nothing: if any
	// id does not resolve to a link owned by userID, no order changes.
	ReplaceOrders(ctx context.Context, userID string, ids []string, updatedAt time.Time) error

	Delete(ctx context.Context, id string) error
}
