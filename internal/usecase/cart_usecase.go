package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase maintains the server-authoritative cart snapshot for the
// current session. Every operation requires an authenticated session and
// either fully replaces the snapshot with the server's response or leaves the
// prior snapshot unchanged on failure. Responses carry a monotonic sequence
// number; a response older than the currently applied one is discarded, so
// overlapping calls can never roll the snapshot back.
type CartUsecase interface {
	Refresh(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	// UpdateQuantity with a quantity of zero or less removes the line item.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context) error

	// Snapshot returns the last applied cart, or nil when no cart exists.
	Snapshot() *entity.Cart
	// Busy reports whether any request is currently in flight.
	Busy() bool
	LastError() error

	Subscribe(fn func()) (unsubscribe func())
}
