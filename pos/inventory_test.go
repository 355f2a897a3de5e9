package pos

import (
	"context"
	"testing"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/seed"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "")

	moved, err := f.svc.Restock(ctx, "i3_o1", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, "70", moved.Ingredient.Quantity.String())
	assert.Equal(t, "70", f.ingredient(t, "i3_o1").Quantity.String())

	tx := moved.Transaction
	assert.Equal(t, models.TransactionTypeExpense, tx.Type)
	assert.Equal(t, models.CategoryInventory, tx.Category)
	assert.Equal(t, "2.00", tx.Amount.StringFixed(2))
	assert.Equal(t, "Restock: Burger Bun x10", tx.Description)
	assert.Equal(t, "loc2_o1", tx.LocationId, "stamped with the ingredient's location")
	assert.Equal(t, "org_1", tx.OrganizationId)

	txs := f.store.Transactions.All()
	assert.Equal(t, tx.Id, txs[len(txs)-1].Id)
}

func TestRecordWaste_FloorsAtZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc1_o1")

	moved, err := f.svc.RecordWaste(ctx, "i1_o1", dec("200"))
	require.NoError(t, err)
	assert.True(t, moved.Ingredient.Quantity.IsZero())
	assert.Equal(t, models.CategoryWaste, moved.Transaction.Category)
	assert.Equal(t, "40.00", moved.Transaction.Amount.StringFixed(2))
	assert.Equal(t, "Waste: Burger Bun x200", moved.Transaction.Description)
}

func TestStockMovement_RejectsNonPositiveAmounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc1_o1")
	before := f.store.Transactions.Len()

	for _, amount := range []decimal.Decimal{decimal.Zero, dec("-3")} {
		_, err := f.svc.Restock(ctx, "i1_o1", amount)
		assert.ErrorIs(t, err, utils.ErrInvalidAmount)
		_, err = f.svc.RecordWaste(ctx, "i1_o1", amount)
		assert.ErrorIs(t, err, utils.ErrInvalidAmount)
	}
	assert.Equal(t, before, f.store.Transactions.Len())
	assert.Equal(t, "150", f.ingredient(t, "i1_o1").Quantity.String())

	_, err := f.svc.Restock(ctx, "i1_o2", dec("1"))
	assert.ErrorIs(t, err, utils.ErrForeignOrganization)
}

func TestIngredientCRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc2_o1")

	added, err := f.svc.AddIngredient(ctx, &models.NewIngredient{Sku: " patty ", Name: "Beef Patty", Unit: "pcs", Quantity: dec("12"), CostPerUnit: dec("1.00"), LowStockThreshold: dec("15")})
	require.NoError(t, err)
	assert.Equal(t, "PATTY", added.Sku)
	assert.Equal(t, "loc2_o1", added.LocationId)
	assert.True(t, added.IsLowStock())

	updated, err := f.svc.UpdateIngredient(ctx, added.Id, &models.NewIngredient{Sku: "PATTY", Name: "Beef Patty 120g", Unit: "pcs", Quantity: dec("40"), CostPerUnit: dec("1.10")})
	require.NoError(t, err)
	assert.Equal(t, "loc2_o1", updated.LocationId)
	assert.Equal(t, "Beef Patty 120g", f.ingredient(t, added.Id).Name)

	_, err = f.svc.AddIngredient(ctx, &models.NewIngredient{Name: "Oil", Unit: "l", Quantity: dec("-1")})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gte", verr.Fields["Quantity"])

	_, err = f.svc.SetStock(ctx, added.Id, dec("-2"))
	require.ErrorAs(t, err, &verr)

	require.NoError(t, f.svc.DeleteIngredient(ctx, added.Id))
	_, ok := f.store.Inventory.Get(added.Id)
	assert.False(t, ok)
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "loc2_o1")

	tx, err := f.svc.AddTransaction(ctx, &models.NewTransaction{Type: models.TransactionTypeExpense, Category: models.CategoryRent, Amount: dec("300"), Description: "March rent"})
	require.NoError(t, err)
	assert.Equal(t, "loc2_o1", tx.LocationId)
	assert.Equal(t, "u_admin_1", tx.EmployeeId)
	assert.Equal(t, fixedNow, tx.Date)

	atBranch, err := f.svc.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, atBranch, 1)
	assert.Equal(t, tx.Id, atBranch[0].Id)

	_, err = f.svc.AddTransaction(ctx, &models.NewTransaction{Type: "refund", Amount: dec("1"), Description: "x"})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Type")
}

func TestRecordWaste_BooksExactCost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.CoffeeAdminEmail, "loc1_o2")

	moved, err := f.svc.RecordWaste(ctx, "i1_o2", dec("0.333"))
	require.NoError(t, err)
	assert.True(t, moved.Transaction.Amount.Equal(dec("4.995")), moved.Transaction.Amount.String())
	assert.True(t, moved.Ingredient.Quantity.Equal(dec("9.667")))
}
