package store

import (
	"context"
	"testing"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/storage"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.Adapter) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	adapter := storage.NewAdapter(storage.NewMemoryBackend(), "smartpos_", logger)
	s := New(adapter)
	s.Load(context.Background(), Seed{})
	return s, adapter
}

func ingredient(id, org, loc string, qty int64) models.Ingredient {
	return models.Ingredient{Id: id, OrganizationId: org, LocationId: loc, Name: id, Quantity: decimal.NewFromInt(qty)}
}

func TestCollection_MutationsPersist(t *testing.T) {
	ctx := context.Background()
	s, adapter := newTestStore(t)

	s.Products.Add(ctx, models.Product{Id: "p1", OrganizationId: "org_1", Name: "Cheeseburger"})
	s.Products.Add(ctx, models.Product{Id: "p2", OrganizationId: "org_1", Name: "Fries"})
	assert.Len(t, storage.LoadOr[[]models.Product](ctx, adapter, storage.KeyProducts, nil), 2)

	// same id: last writer wins, position kept
	s.Products.Add(ctx, models.Product{Id: "p1", OrganizationId: "org_1", Name: "Double Cheeseburger"})
	persisted := storage.LoadOr[[]models.Product](ctx, adapter, storage.KeyProducts, nil)
	require.Len(t, persisted, 2)
	assert.Equal(t, "Double Cheeseburger", persisted[0].Name)

	assert.True(t, s.Products.Update(ctx, models.Product{Id: "p2", OrganizationId: "org_1", Name: "Large Fries"}))
	assert.False(t, s.Products.Update(ctx, models.Product{Id: "missing"}))
	assert.Equal(t, 2, s.Products.Len())

	assert.True(t, s.Products.Delete(ctx, "p1"))
	assert.False(t, s.Products.Delete(ctx, "p1"))
	persisted = storage.LoadOr[[]models.Product](ctx, adapter, storage.KeyProducts, nil)
	require.Len(t, persisted, 1)
	assert.Equal(t, "Large Fries", persisted[0].Name)
}

func TestCollection_PrependAndCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Transactions.Prepend(ctx, models.Transaction{Id: "tx1"})
	s.Transactions.Prepend(ctx, models.Transaction{Id: "tx2"})
	all := s.Transactions.All()
	require.Len(t, all, 2)
	assert.Equal(t, "tx2", all[0].Id)

	all[0].Id = "mutated"
	got, ok := s.Transactions.Get("tx2")
	require.True(t, ok)
	assert.Equal(t, "tx2", got.Id)
}

func TestScopedViews(t *testing.T) {
	items := []models.Ingredient{
		ingredient("i1", "org_1", "loc1", 1),
		ingredient("i2", "org_1", "loc2", 1),
		ingredient("i3", "org_2", "loc3", 1),
		ingredient("i4", "org_1", "loc1", 1),
	}

	ids := func(in []models.Ingredient) []string {
		var out []string
		for _, i := range in {
			out = append(out, i.Id)
		}
		return out
	}

	assert.Equal(t, []string{"i1", "i2", "i4"}, ids(ForOrganization(items, "org_1")))
	assert.Equal(t, []string{"i1", "i4"}, ids(ForLocation(items, "org_1", "loc1")))
	assert.Equal(t, []string{"i1", "i2", "i4"}, ids(ForLocation(items, "org_1", models.AllLocations)))
	assert.Empty(t, ForLocation(items, "org_2", "loc1"))
	assert.Empty(t, ForOrganization(items, ""))
	assert.Len(t, items, 4, "views never mutate the source")
}

func TestGetScoped(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.Customers.Add(ctx, models.Customer{Id: "c1", OrganizationId: "org_1"})

	c, err := GetScoped(s.Customers, "c1", "org_1")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.Id)

	_, err = GetScoped(s.Customers, "c1", "org_2")
	assert.ErrorIs(t, err, utils.ErrForeignOrganization)
	_, err = GetScoped(s.Customers, "nope", "org_1")
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)
}

func TestCommit_AppliesAllChangesTogether(t *testing.T) {
	ctx := context.Background()
	s, adapter := newTestStore(t)
	s.Inventory.Add(ctx, ingredient("i1", "org_1", "loc1", 10))

	inv := s.Inventory.All()
	inv[0].Quantity = decimal.NewFromInt(7)
	s.Commit(ctx,
		s.Inventory.Stage(inv),
		s.Transactions.Stage([]models.Transaction{{Id: "tx1"}}),
	)

	got, _ := s.Inventory.Get("i1")
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 1, s.Transactions.Len())

	persistedInv := storage.LoadOr[[]models.Ingredient](ctx, adapter, storage.KeyInventory, nil)
	assert.True(t, persistedInv[0].Quantity.Equal(decimal.NewFromInt(7)))
	assert.Len(t, storage.LoadOr[[]models.Transaction](ctx, adapter, storage.KeyTransactions, nil), 1)
}

func TestLoad_UsesSeedOnlyWhenNothingPersisted(t *testing.T) {
	ctx := context.Background()
	logger, _ := test.NewNullLogger()
	adapter := storage.NewAdapter(storage.NewMemoryBackend(), "smartpos_", logger)

	first := New(adapter)
	first.Load(ctx, Seed{Locations: []models.Location{{Id: "loc1", OrganizationId: "org_1"}}})
	assert.Equal(t, 1, first.Locations.Len())
	first.Locations.Add(ctx, models.Location{Id: "loc2", OrganizationId: "org_1"})
	first.SetSettings(ctx, models.AppSettings{Currency: models.CurrencyUSD, Language: models.LanguageSwahili})
	first.SetSession(ctx, &models.User{Id: "u1"}, "org_1")

	second := New(adapter)
	second.Load(ctx, Seed{Locations: []models.Location{{Id: "seed-only"}}})
	assert.Equal(t, 2, second.Locations.Len())
	assert.Equal(t, models.CurrencyUSD, second.Settings().Currency)
	require.NotNil(t, second.CurrentUser())
	assert.Equal(t, "u1", second.CurrentUser().Id)
	assert.Equal(t, "org_1", second.CurrentOrganization())

	second.Clear(ctx)
	assert.Equal(t, 0, second.Locations.Len())
	assert.Nil(t, second.CurrentUser())
	assert.Equal(t, models.DefaultSettings(), second.Settings())
}
