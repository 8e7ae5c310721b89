package shop

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tracykish1/T-T-Botanica-Shop/internal/cart"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/catalog"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/checkout"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/persist"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/rules"
)

func setupService(t *testing.T, store persist.Store) *Service {
	t.Helper()
	return New(context.Background(), zap.NewNop(), rules.Default(), store, catalog.Seed())
}

// waitForCartLines blocks until the persisted cart for the session has
// exactly n lines. Saves are fire-and-forget, so tests wait for each
// write to land before triggering the next one.
func waitForCartLines(t *testing.T, store persist.Store, sessionID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		data, err := store.Load(context.Background(), persist.CartKey(sessionID))
		if err != nil {
			return false
		}
		var c domain.Cart
		if err := json.Unmarshal(data, &c); err != nil {
			return false
		}
		return len(c.Lines) == n
	}, time.Second, 10*time.Millisecond)
}

func TestAddItem_ValidatesAgainstCatalog(t *testing.T) {
	svc := setupService(t, persist.NewMemoryStore())
	ctx := context.Background()

	result, err := svc.AddItem(ctx, "s1", "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, cart.StatusAdded, result.Status)
	assert.True(t, result.OpenCart)
	assert.Equal(t, 2, result.Cart.Units())

	_, err = svc.AddItem(ctx, "s1", "ghost", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestAddItem_OutOfStockDoesNotSignalOpenCart(t *testing.T) {
	store := persist.NewMemoryStore()
	seed := catalog.Seed()
	seed[0].Stock = 0
	svc := New(context.Background(), zap.NewNop(), rules.Default(), store, seed)

	result, err := svc.AddItem(context.Background(), "s1", seed[0].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, cart.StatusOutOfStock, result.Status)
	assert.False(t, result.OpenCart)
	assert.True(t, result.Cart.Empty())
}

func TestCart_PersistRoundTrip(t *testing.T) {
	store := persist.NewMemoryStore()
	svc := setupService(t, store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "p3", 1)
	require.NoError(t, err)
	waitForCartLines(t, store, "s1", 1)

	_, err = svc.AddItem(ctx, "s1", "p1", 2)
	require.NoError(t, err)
	waitForCartLines(t, store, "s1", 2)

	// A fresh service backed by the same store sees the identical cart
	reloaded := setupService(t, store).Cart(ctx, "s1")
	require.Len(t, reloaded.Lines, 2)
	assert.Equal(t, "p3", reloaded.Lines[0].ProductID)
	assert.Equal(t, 1, reloaded.Lines[0].Qty)
	assert.True(t, reloaded.Lines[0].Price.Equal(decimal.NewFromInt(68)))
	assert.Equal(t, "p1", reloaded.Lines[1].ProductID)
	assert.Equal(t, 2, reloaded.Lines[1].Qty)
}

func TestCart_CorruptPersistedDataFallsBackToEmpty(t *testing.T) {
	store := persist.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), persist.CartKey("s1"), []byte("{not json")))

	svc := setupService(t, store)
	assert.True(t, svc.Cart(context.Background(), "s1").Empty())
}

func TestCatalog_CorruptPersistedDataFallsBackToSeed(t *testing.T) {
	store := persist.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), persist.NamespaceCatalog, []byte("garbage")))

	svc := setupService(t, store)
	assert.Len(t, svc.Products(catalog.Filter{}), 4)

	// The seed gets persisted back over the corrupt value
	require.Eventually(t, func() bool {
		data, err := store.Load(context.Background(), persist.NamespaceCatalog)
		if err != nil {
			return false
		}
		var items []domain.Product
		return json.Unmarshal(data, &items) == nil && len(items) == 4
	}, time.Second, 10*time.Millisecond)
}

func TestCatalog_PersistedCatalogWinsOverSeed(t *testing.T) {
	store := persist.NewMemoryStore()
	persisted := []domain.Product{{ID: "x1", Name: "Syngonium albo", Price: decimal.NewFromInt(24), Stock: 3, Category: "Aroids", Type: "Cutting"}}
	data, err := json.Marshal(persisted)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), persist.NamespaceCatalog, data))

	svc := setupService(t, store)
	products := svc.Products(catalog.Filter{})
	require.Len(t, products, 1)
	assert.Equal(t, "x1", products[0].ID)
}

func TestUpdateQuantity_RemovalPersists(t *testing.T) {
	store := persist.NewMemoryStore()
	svc := setupService(t, store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	waitForCartLines(t, store, "s1", 1)

	c := svc.UpdateQuantity(ctx, "s1", "p1", -1)
	assert.True(t, c.Empty())

	require.Eventually(t, func() bool {
		data, err := store.Load(context.Background(), persist.CartKey("s1"))
		if err != nil {
			return false
		}
		var persisted domain.Cart
		if err := json.Unmarshal(data, &persisted); err != nil {
			return false
		}
		return persisted.Empty()
	}, time.Second, 10*time.Millisecond)
}

func TestQuote_UsesSessionCart(t *testing.T) {
	svc := setupService(t, persist.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "p1", 2) // 2 × $38
	require.NoError(t, err)

	breakdown, snapshot := svc.Quote(ctx, "s1", domain.Destination{Country: "US", State: "WA", City: "Tacoma"})
	assert.Equal(t, 2, snapshot.Units())
	assert.Equal(t, "free_over_75", breakdown.Shipping.ID)
	assert.True(t, breakdown.Total.Equal(decimal.RequireFromString("83.752")))
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	svc := setupService(t, persist.NewMemoryStore())

	_, err := svc.Checkout(context.Background(), "s1", domain.Destination{}, "")
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestCheckout_SeedItemsComposeMessage(t *testing.T) {
	svc := setupService(t, persist.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)

	// Seed products carry no payment links, so checkout composes a message
	outcome, err := svc.Checkout(ctx, "s1", domain.Destination{Country: "US", State: "CA"}, "")
	require.NoError(t, err)
	assert.Equal(t, checkout.OutcomeComposedMessage, outcome.Kind)
	require.NotNil(t, outcome.Message)
	assert.Contains(t, outcome.Message.Body, "Total: $46.00")
}

func TestSessionCarts_AreIsolated(t *testing.T) {
	svc := setupService(t, persist.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)

	assert.True(t, svc.Cart(ctx, "s2").Empty())
	assert.Equal(t, 1, svc.Cart(ctx, "s1").Units())
}
