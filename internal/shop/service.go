package shop

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/cart"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/catalog"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/checkout"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/persist"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/pricing"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/rules"
)

const saveTimeout = time.Second

// AddResult tells the presentation layer what AddItem did. OpenCart is
// the explicit "cart should become visible" signal; it fires whenever
// the cart actually changed.
type AddResult struct {
	Status   cart.AddStatus
	OpenCart bool
	Cart     domain.Cart
}

// Service ties the catalog, per-session carts, rule config and the
// persistence collaborator together. Carts are loaded on first touch
// and saved asynchronously on every change; the engine itself never
// waits on persistence.
type Service struct {
	log      *zap.Logger
	catalog  catalog.Catalog
	cfg      *rules.Config
	store    persist.Store
	resolver *checkout.Resolver

	mu    sync.Mutex
	carts map[string]*cart.Store
	sfg   singleflight.Group // Prevents duplicate cart loads for the same session
}

func New(ctx context.Context, log *zap.Logger, cfg *rules.Config, store persist.Store, seed []domain.Product) *Service {
	cat := catalog.NewMemoryStore(seed)
	s := &Service{
		log:      log,
		catalog:  cat,
		cfg:      cfg,
		store:    store,
		resolver: checkout.NewResolver(cat, cfg),
		carts:    make(map[string]*cart.Store),
	}
	s.loadCatalog(ctx)
	return s
}

// loadCatalog restores the persisted catalog. Missing or corrupt data
// falls back silently to the seed, which is then persisted.
func (s *Service) loadCatalog(ctx context.Context) {
	data, err := s.store.Load(ctx, persist.NamespaceCatalog)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			s.log.Warn("catalog load failed, using seed", zap.Error(err))
		}
		s.saveCatalog()
		return
	}

	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil || len(items) == 0 {
		s.log.Warn("persisted catalog unusable, using seed", zap.Error(err))
		s.saveCatalog()
		return
	}
	s.catalog.Replace(items)
}

// Products returns the filtered catalog listing
func (s *Service) Products(f catalog.Filter) []domain.Product {
	return s.catalog.List(f)
}

// Product returns a single catalog entry
func (s *Service) Product(id string) (domain.Product, error) {
	return s.catalog.Get(id)
}

// Facets returns the category and type facet lists
func (s *Service) Facets() (categories, types []string) {
	return s.catalog.Categories(), s.catalog.Types()
}

// Cart returns the session's cart snapshot
func (s *Service) Cart(ctx context.Context, sessionID string) domain.Cart {
	return s.sessionCart(ctx, sessionID).Snapshot()
}

// AddItem validates the product against the catalog and adds it to the
// session's cart, clamped to stock.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, qty int) (AddResult, error) {
	p, err := s.catalog.Get(productID)
	if err != nil {
		return AddResult{}, err
	}

	c := s.sessionCart(ctx, sessionID)
	status := c.Add(p, qty)
	if status.Changed() {
		s.saveCart(sessionID, c.Snapshot())
	}
	return AddResult{
		Status:   status,
		OpenCart: status.Changed(),
		Cart:     c.Snapshot(),
	}, nil
}

// UpdateQuantity adjusts a line by delta; a no-op when the line does
// not exist.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) domain.Cart {
	c := s.sessionCart(ctx, sessionID)
	if c.UpdateQuantity(productID, delta) && delta != 0 {
		s.saveCart(sessionID, c.Snapshot())
	}
	return c.Snapshot()
}

// RemoveItem deletes a line unconditionally
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) domain.Cart {
	c := s.sessionCart(ctx, sessionID)
	if c.Remove(productID) {
		s.saveCart(sessionID, c.Snapshot())
	}
	return c.Snapshot()
}

// ClearCart empties the session's cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) domain.Cart {
	c := s.sessionCart(ctx, sessionID)
	c.Clear()
	s.saveCart(sessionID, c.Snapshot())
	return c.Snapshot()
}

// Quote prices the session's cart against the destination
func (s *Service) Quote(ctx context.Context, sessionID string, dest domain.Destination) (pricing.Breakdown, domain.Cart) {
	snapshot := s.sessionCart(ctx, sessionID).Snapshot()
	return pricing.Quote(snapshot, dest, s.cfg), snapshot
}

// Checkout resolves the session's cart to a checkout outcome. Empty
// carts are rejected here; the resolver itself does not forbid them.
func (s *Service) Checkout(ctx context.Context, sessionID string, dest domain.Destination, notes string) (checkout.Outcome, error) {
	snapshot := s.sessionCart(ctx, sessionID).Snapshot()
	if snapshot.Empty() {
		return checkout.Outcome{}, checkout.ErrEmptyCart
	}
	return s.resolver.Resolve(snapshot, dest, notes), nil
}

// sessionCart returns the session's cart store, restoring it from
// persistence on first touch. Missing or corrupt data falls back to an
// empty cart.
func (s *Service) sessionCart(ctx context.Context, sessionID string) *cart.Store {
	s.mu.Lock()
	if c, ok := s.carts[sessionID]; ok {
		s.mu.Unlock()
		return c
	}
	s.mu.Unlock()

	v, _, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		c := s.restoreCart(ctx, sessionID)

		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.carts[sessionID]; ok {
			return existing, nil
		}
		s.carts[sessionID] = c
		return c, nil
	})
	return v.(*cart.Store)
}

func (s *Service) restoreCart(ctx context.Context, sessionID string) *cart.Store {
	data, err := s.store.Load(ctx, persist.CartKey(sessionID))
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			s.log.Warn("cart load failed, starting empty", zap.String("session_id", sessionID), zap.Error(err))
		}
		return cart.NewStore()
	}

	var c domain.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.log.Warn("persisted cart corrupt, starting empty", zap.String("session_id", sessionID), zap.Error(err))
		return cart.NewStore()
	}
	return cart.Restore(c)
}

// saveCart persists fire-and-forget; mutations never block on the
// collaborator.
func (s *Service) saveCart(sessionID string, c domain.Cart) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		data, err := json.Marshal(c)
		if err != nil {
			s.log.Warn("cart marshal failed", zap.String("session_id", sessionID), zap.Error(err))
			return
		}
		if err := s.store.Save(ctx, persist.CartKey(sessionID), data); err != nil {
			s.log.Warn("cart save failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	}()
}

func (s *Service) saveCatalog() {
	snapshot := s.catalog.Snapshot()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		data, err := json.Marshal(snapshot)
		if err != nil {
			s.log.Warn("catalog marshal failed", zap.Error(err))
			return
		}
		if err := s.store.Save(ctx, persist.NamespaceCatalog, data); err != nil {
			s.log.Warn("catalog save failed", zap.Error(err))
		}
	}()
}
