package pos

import (
	"context"
	"testing"

	"github.com/mmdatafocus/smartpos_backend/seed"
	"github.com/mmdatafocus/smartpos_backend/storage"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc1_o1")

	fillCart(t, f.svc, "p1_o1", "p3_o1", "p1_o1")
	cart := f.svc.Cart(ctx)
	require.Len(t, cart, 2)
	assert.Equal(t, "p1_o1", cart[0].Id)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "7.00", cart[0].LineTotal().StringFixed(2))

	cart = f.svc.UpdateCartQuantity(ctx, "p3_o1", 2)
	assert.Equal(t, 3, cart[1].Quantity)

	cart = f.svc.UpdateCartQuantity(ctx, "p1_o1", -5)
	require.Len(t, cart, 1)
	assert.Equal(t, "p3_o1", cart[0].Id)

	cart = f.svc.RemoveFromCart(ctx, "p3_o1")
	assert.Empty(t, cart)

	_, err := f.svc.AddToCart(ctx, "p1_o2")
	assert.ErrorIs(t, err, utils.ErrForeignOrganization)
	_, err = f.svc.AddToCart(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)

	fillCart(t, f.svc, "p2_o1")
	f.svc.ClearCart(ctx)
	assert.Empty(t, f.svc.Cart(ctx))
}

func TestCart_IsNeverPersisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc1_o1")
	fillCart(t, f.svc, "p1_o1")

	backend := f.adapter.Backend().(*storage.MemoryBackend)
	for _, key := range backend.Keys() {
		assert.NotContains(t, key, "cart")
	}

	// the returned cart is a copy
	cart := f.svc.Cart(ctx)
	cart[0].Quantity = 99
	assert.Equal(t, 1, f.svc.Cart(ctx)[0].Quantity)
}
