package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// cartStore implements the CartUsecase interface. It exclusively owns the
// Cart entity and reads (never owns) the session's authentication flag.
//
// Overlapping requests are allowed to run concurrently. Each request takes a
// monotonic sequence number at issue time and its response is applied only if
// no newer response has been applied yet, so a slow stale response cannot
// overwrite the result of a later call.
type cartStore struct {
	gateway service.CommerceGateway
	session usecase.SessionUsecase
	logger  *slog.Logger

	mu         sync.RWMutex
	cart       *entity.Cart
	lastErr    error
	inflight   int
	issuedSeq  uint64
	appliedSeq uint64

	subscribers
}

// NewCartStore is the constructor for cartStore. It drops the snapshot
// whenever the session transitions to unauthenticated.
func NewCartStore(gateway service.CommerceGateway, session usecase.SessionUsecase, logger *slog.Logger) usecase.CartUsecase {
	s := &cartStore{
		gateway: gateway,
		session: session,
		logger:  logger,
	}

	session.Subscribe(func() {
		if session.IsAuthenticated() {
			return
		}
		s.drop()
	})

	return s
}

// Refresh fetches the current cart and replaces the local snapshot. A failed
// fetch retains the error but does not clear the existing snapshot.
func (s *cartStore) Refresh(ctx context.Context) (*entity.Cart, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	seq := s.begin()
	cart, err := s.gateway.GetCart(ctx)

	return s.finish(seq, cart, err)
}

// AddItem adds a product to the cart. The server is the source of truth for
// stock limits; the response replaces the local snapshot.
func (s *cartStore) AddItem(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, s.fail(domainerrors.ErrValidationFailed.WrapMessage("quantity must be a positive integer"))
	}

	seq := s.begin()
	cart, err := s.gateway.AddToCart(ctx, productID, quantity)

	return s.finish(seq, cart, err)
}

// UpdateQuantity changes a line item's quantity. A quantity of zero or less
// is equivalent to removing the line item.
func (s *cartStore) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, itemID)
	}

	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	seq := s.begin()
	cart, err := s.gateway.UpdateCartItem(ctx, itemID, quantity)

	return s.finish(seq, cart, err)
}

// RemoveItem removes a single line item.
func (s *cartStore) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	seq := s.begin()
	cart, err := s.gateway.RemoveFromCart(ctx, itemID)

	return s.finish(seq, cart, err)
}

// Clear empties the entire cart. On success the snapshot becomes nil.
func (s *cartStore) Clear(ctx context.Context) error {
	if err := s.requireAuth(); err != nil {
		return err
	}

	seq := s.begin()
	err := s.gateway.ClearCart(ctx)
	_, err = s.finish(seq, nil, err)

	return err
}

// Snapshot returns the last applied cart, or nil when no cart exists.
func (s *cartStore) Snapshot() *entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cart
}

// Busy reports whether any request is currently in flight.
func (s *cartStore) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inflight > 0
}

// LastError returns the retained failure from the most recent operation.
func (s *cartStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}

// Subscribe registers a callback invoked after every state change.
func (s *cartStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.add(fn)
}

// requireAuth is the precondition shared by every operation: an
// unauthenticated caller gets a typed failure and the snapshot stays nil.
func (s *cartStore) requireAuth() error {
	if s.session.IsAuthenticated() {
		return nil
	}

	return s.fail(domainerrors.ErrAuthRequired)
}

// fail retains err as observable state and returns it for the caller.
func (s *cartStore) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	s.notify()

	return err
}

// begin marks a request in flight and hands out its sequence number.
func (s *cartStore) begin() uint64 {
	s.mu.Lock()
	s.inflight++
	s.issuedSeq++
	seq := s.issuedSeq
	s.mu.Unlock()

	s.notify()

	return seq
}

// finish applies the outcome of request seq. Failures retain the error and
// leave the snapshot unchanged; successes replace the snapshot unless a
// newer response has already been applied.
func (s *cartStore) finish(seq uint64, cart *entity.Cart, err error) (*entity.Cart, error) {
	s.mu.Lock()
	s.inflight--

	if err != nil {
		s.lastErr = err
		s.mu.Unlock()

		s.logger.Warn("cart operation failed", slog.Any("error", err))
		s.notify()

		return nil, err
	}

	s.lastErr = nil
	if seq > s.appliedSeq {
		s.appliedSeq = seq
		s.cart = cart
	} else {
		s.logger.Debug("discarding stale cart response",
			slog.Uint64("seq", seq),
			slog.Uint64("applied", s.appliedSeq),
		)
	}
	current := s.cart
	s.mu.Unlock()

	s.notify()

	return current, nil
}

// drop clears the snapshot when the session ends. Advancing appliedSeq to
// issuedSeq marks every in-flight response stale, so a mutation issued before
// logout cannot repopulate the snapshot when it resolves after.
func (s *cartStore) drop() {
	s.mu.Lock()
	changed := s.cart != nil || s.lastErr != nil
	s.cart = nil
	s.lastErr = nil
	s.appliedSeq = s.issuedSeq
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}
