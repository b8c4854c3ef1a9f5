package memory

import (
	"context"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

var (
	_ repository.ICartRepo            = (*CartRepo)(nil)
	_ repository.IAddressRepo         = (*AddressRepo)(nil)
	_ repository.ICheckoutSessionRepo = (*CheckoutSessionRepo)(nil)
)

// CartRepo is used when redis is not configured.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]model.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]model.Cart)}
}

func (r *CartRepo) GetCart(ctx context.Context, scope string) (*model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[scope]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	cart.Items = append([]model.LineItem{}, cart.Items...)
	return &cart, nil
}

func (r *CartRepo) SaveCart(ctx context.Context, cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cart
	stored.Items = append([]model.LineItem{}, cart.Items...)
	r.carts[cart.Scope] = stored
	return nil
}

func (r *CartRepo) DeleteCart(ctx context.Context, scope string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, scope)
	return nil
}

type AddressRepo struct {
	mu        sync.RWMutex
	addresses map[string]model.SavedAddress
}

func NewAddressRepo() *AddressRepo {
	return &AddressRepo{addresses: make(map[string]model.SavedAddress)}
}

func (r *AddressRepo) GetAddress(ctx context.Context, userID string) (*model.SavedAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.addresses[userID]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}
	return &address, nil
}

func (r *AddressRepo) SaveAddress(ctx context.Context, address *model.SavedAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses[address.UserID] = *address
	return nil
}

type sessionEntry struct {
	session   model.CheckoutSession
	expiresAt time.Time
}

// CheckoutSessionRepo expires sessions lazily on read.
type CheckoutSessionRepo struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]sessionEntry
}

func NewCheckoutSessionRepo(ttl time.Duration) *CheckoutSessionRepo {
	return &CheckoutSessionRepo{
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
	}
}

func (r *CheckoutSessionRepo) GetSession(ctx context.Context, id string) (*model.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if r.ttl > 0 && time.Now().After(entry.expiresAt) {
		delete(r.sessions, id)
		return nil, repository.ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (r *CheckoutSessionRepo) SaveSession(ctx context.Context, session *model.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = sessionEntry{
		session:   *session,
		expiresAt: time.Now().Add(r.ttl),
	}
	return nil
}
