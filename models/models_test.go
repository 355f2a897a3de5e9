package models

import (
	"errors"
	"testing"
	"time"

	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNextTableStatus(t *testing.T) {
	cases := []struct {
		from TableStatus
		to   TableStatus
	}{
		{TableAvailable, TableOccupied},
		{TableOccupied, TableDirty},
		{TableDirty, TableAvailable},
		{TableReserved, TableOccupied},
	}
	for _, tc := range cases {
		next, ok := NextTableStatus(tc.from)
		require.True(t, ok, tc.from)
		assert.Equal(t, tc.to, next, tc.from)
	}
	_, ok := NextTableStatus("broken")
	assert.False(t, ok)
}

func TestMatchProductCategory(t *testing.T) {
	c, ok := MatchProductCategory("Starter Kit: Burgers")
	require.True(t, ok)
	assert.Equal(t, CategoryBurgers, c)

	c, ok = MatchProductCategory("coffee")
	require.True(t, ok)
	assert.Equal(t, CategoryCoffee, c)

	_, ok = MatchProductCategory("Starter Kit: Cafe")
	assert.False(t, ok)
}

func TestTemplateToProduct_DefaultsCategory(t *testing.T) {
	tpl := TemplateProduct{Id: "tp_7", Name: "Sparkling Water", Price: dec("2"), WholesalePrice: dec("0.5"), Category: "Beverages"}
	p := tpl.ToProduct("org_1")

	assert.NotEqual(t, tpl.Id, p.Id)
	assert.NotEmpty(t, p.Id)
	assert.Equal(t, "org_1", p.OrganizationId)
	assert.Equal(t, CategoryBurgers, p.Category)
	assert.True(t, p.Price.Equal(dec("2")))
}

func TestNewProductBuild(t *testing.T) {
	input := NewProduct{
		Name:     "  Cheeseburger ",
		Price:    dec("3.50"),
		Category: CategoryBurgers,
		Recipe:   []NewRecipeItem{{IngredientId: "i1_o1", Quantity: dec("1")}},
	}
	p, err := input.Build("", "org_1")
	require.NoError(t, err)
	assert.Equal(t, "Cheeseburger", p.Name)
	assert.NotEmpty(t, p.Id)
	require.Len(t, p.Recipe, 1)
	assert.Equal(t, "i1_o1", p.Recipe[0].IngredientId)

	missing := NewProduct{Price: dec("1")}
	_, err = missing.Build("", "org_1")
	var ve *utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "required", ve.Fields["Name"])

	negative := NewProduct{Name: "x", Category: CategorySides, Price: dec("-1")}
	_, err = negative.Build("", "org_1")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "gte", ve.Fields["Price"])
}

func TestNewRegistrationBuild(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	input := NewRegistration{Name: "Jane", Email: "Jane@Example.com", OrganizationName: "Mama Lishe Kitchen"}
	org, user, err := input.Build(now)
	require.NoError(t, err)

	assert.Equal(t, "mama-lishe-kitchen", org.Slug)
	assert.Equal(t, PlanFree, org.Plan)
	assert.Equal(t, user.Id, org.OwnerId)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.Equal(t, org.Id, user.OrganizationId)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, now, org.CreatedAt)
}

func TestShiftClose(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	s := Shift{Id: "s1", StartTime: start}
	require.True(t, s.IsOpen())

	closed := s.Close(start.Add(7*time.Hour + 30*time.Minute))
	assert.False(t, closed.IsOpen())
	require.NotNil(t, closed.HoursWorked)
	assert.True(t, closed.HoursWorked.Equal(dec("7.5")))
	assert.True(t, s.IsOpen(), "Close returns a copy")

	short := s.Close(start.Add(20 * time.Minute))
	assert.False(t, short.HoursWorked.Equal(dec("0.33")))
	assert.Equal(t, "0.3333", short.HoursWorked.StringFixed(4))
}

func TestNewTransactionBuild_DefaultsCategory(t *testing.T) {
	now := time.Now()
	input := NewTransaction{Type: TransactionTypeExpense, Amount: dec("40"), Description: "Gas refill"}
	tx, err := input.Build("org_1", "loc1_o1", "u1", now)
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, tx.Category)
	assert.Equal(t, "loc1_o1", tx.LocationId)
	assert.Equal(t, now, tx.Date)

	bad := NewTransaction{Type: "refund", Description: "x"}
	_, err = bad.Build("org_1", "loc1_o1", "u1", now)
	assert.Error(t, err)
}

func TestCartItemTotals(t *testing.T) {
	item := CartItem{Product: Product{Price: dec("3.50"), WholesalePrice: dec("1.50")}, Quantity: 2}
	assert.True(t, item.LineTotal().Equal(dec("7")))
	assert.True(t, item.LineCost().Equal(dec("3")))
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
	assert.Error(t, AppSettings{Currency: "JPY", Language: LanguageEnglish}.Validate())
	assert.Error(t, AppSettings{Currency: CurrencyUSD, Language: "fr"}.Validate())
	assert.True(t, Currencies[CurrencyTZS].Convert(dec("7.56")).Equal(dec("19656")))
}
