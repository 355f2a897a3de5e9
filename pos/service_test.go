package pos

import (
	"context"
	"testing"
	"time"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/seed"
	"github.com/mmdatafocus/smartpos_backend/storage"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *Service
	store   *store.Store
	adapter *storage.Adapter
	hook    *test.Hook
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	adapter := storage.NewAdapter(storage.NewMemoryBackend(), "smartpos_", logger)
	st := store.New(adapter)
	st.Load(context.Background(), seed.Demo(fixedNow))

	f := &fixture{store: st, adapter: adapter, hook: hook, now: fixedNow}
	f.svc = NewService(st, logger, WithClock(func() time.Time { return f.now }))
	return f
}

// login signs in email and selects locationId unless it is empty.
func (f *fixture) login(t *testing.T, email, locationId string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.Login(ctx, email)
	require.NoError(t, err)
	if locationId != "" {
		require.NoError(t, f.svc.SelectLocation(ctx, locationId))
	}
}

func (f *fixture) ingredient(t *testing.T, id string) models.Ingredient {
	t.Helper()
	ing, ok := f.store.Inventory.Get(id)
	require.True(t, ok, "ingredient %s", id)
	return ing
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewService_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.SuperAdminEmail, "")
	require.NoError(t, f.svc.SelectOrganization(ctx, "org_2"))

	reloaded := store.New(f.adapter)
	reloaded.Load(ctx, seed.Demo(fixedNow))
	svc := NewService(reloaded, nil)

	info := svc.Session(ctx)
	require.NotNil(t, info.User)
	assert.Equal(t, "u_super", info.User.Id)
	require.NotNil(t, info.Organization)
	assert.Equal(t, "org_2", info.Organization.Id)
	assert.Equal(t, models.AllLocations, info.SelectedLocationId)
	assert.Equal(t, "loc1_o2", info.LocationId)
}

func TestScopedReads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "")

	all, err := f.svc.Inventory(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, ing := range all {
		assert.Equal(t, "org_1", ing.OrganizationId)
	}

	require.NoError(t, f.svc.SelectLocation(ctx, "loc2_o1"))
	atBranch, err := f.svc.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, atBranch, 1)
	assert.Equal(t, "i3_o1", atBranch[0].Id)

	customers, err := f.svc.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "c1", customers[0].Id)
}

func TestScopedWrites_RejectForeignRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc1_o1")

	_, err := f.svc.UpdateCustomer(ctx, "c2", &models.NewCustomer{Name: "Bob"})
	assert.ErrorIs(t, err, utils.ErrForeignOrganization)

	assert.ErrorIs(t, f.svc.DeleteProduct(ctx, "p1_o2"), utils.ErrForeignOrganization)
	assert.ErrorIs(t, f.svc.DeleteProduct(ctx, "missing"), utils.ErrorRecordNotFound)
	assert.ErrorIs(t, f.svc.SelectLocation(ctx, "loc1_o2"), utils.ErrForeignOrganization)

	c2, _ := f.store.Customers.Get("c2")
	assert.Equal(t, "Bob CoffeeLover", c2.Name)
}

func TestOperationsRequireLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Products(ctx, ProductFilter{})
	assert.ErrorIs(t, err, utils.ErrNotLoggedIn)
	_, err = f.svc.AddToCart(ctx, "p1_o1")
	assert.ErrorIs(t, err, utils.ErrNotLoggedIn)
	_, err = f.svc.TemplateProducts(ctx)
	assert.ErrorIs(t, err, utils.ErrNotLoggedIn)
}

func TestWriteLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("all selected writes to the first location", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, seed.BurgerAdminEmail, "")
		table, err := f.svc.AddTable(ctx, &models.NewTable{Name: "Bar 1", Seats: 2})
		require.NoError(t, err)
		assert.Equal(t, "loc1_o1", table.LocationId)
		assert.Equal(t, models.TableAvailable, table.Status)
	})

	t.Run("selected location wins", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, seed.BurgerAdminEmail, "loc2_o1")
		employee, err := f.svc.AddEmployee(ctx, &models.NewEmployee{Name: "Asha", Role: models.RoleCashier, Pin: "4321"})
		require.NoError(t, err)
		assert.Equal(t, "loc2_o1", employee.LocationId)
		assert.Equal(t, models.EmployeeClockedOut, employee.Status)
	})

	t.Run("organization without locations", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.svc.Register(ctx, &models.NewRegistration{Name: "Neema", Email: "neema@chips.co.tz", OrganizationName: "Chips Mayai"})
		require.NoError(t, err)

		_, err = f.svc.AddIngredient(ctx, &models.NewIngredient{Name: "Potato", Unit: "kg"})
		assert.ErrorIs(t, err, utils.ErrNoLocationAvailable)

		t.Setenv("ALLOW_UNASSIGNED_LOCATION", "true")
		ing, err := f.svc.AddIngredient(ctx, &models.NewIngredient{Name: "Potato", Unit: "kg"})
		require.NoError(t, err)
		assert.Empty(t, ing.LocationId)
	})
}

func TestDeleteSelectedLocationResetsSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc2_o1")

	require.NoError(t, f.svc.DeleteLocation(ctx, "loc2_o1"))
	assert.Equal(t, models.AllLocations, f.svc.Session(ctx).SelectedLocationId)

	// stock stamped with the removed location stays
	_, ok := f.store.Inventory.Get("i3_o1")
	assert.True(t, ok)
}

func TestProducts_Filter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "")

	found, err := f.svc.Products(ctx, ProductFilter{Search: "CHEE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p1_o1", found[0].Id)

	drinks, err := f.svc.Products(ctx, ProductFilter{Category: models.CategoryDrinks})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Cola", drinks[0].Name)

	f.login(t, seed.SuperAdminEmail, "")
	everything, err := f.svc.Products(ctx, ProductFilter{Category: models.CategoryDrinks})
	require.NoError(t, err)
	assert.Len(t, everything, 3)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.Equal(t, models.DefaultSettings(), f.svc.Settings(ctx))

	updated, err := f.svc.UpdateSettings(ctx, models.AppSettings{Currency: models.CurrencyUSD, Language: models.LanguageSwahili})
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyUSD, updated.Currency)
	assert.Equal(t, updated, storage.LoadOr(ctx, f.adapter, storage.KeySettings, models.AppSettings{}))

	_, err = f.svc.UpdateSettings(ctx, models.AppSettings{Currency: "XYZ", Language: models.LanguageEnglish})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.CurrencyUSD, f.svc.Settings(ctx).Currency)
}
