package pos

import (
	"bytes"
	"context"
	"testing"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/seed"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTemplateAdministration_SuperAdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "")

	_, err := f.svc.AddTemplateProduct(ctx, &models.NewTemplateProduct{Name: "Chai", Category: "Beverages"})
	assert.ErrorIs(t, err, utils.ErrSuperAdminOnly)
	assert.ErrorIs(t, f.svc.DeleteTemplateProduct(ctx, "tp_1"), utils.ErrSuperAdminOnly)

	templates, err := f.svc.TemplateProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 7)

	f.login(t, seed.SuperAdminEmail, "")
	chai, err := f.svc.AddTemplateProduct(ctx, &models.NewTemplateProduct{Name: "Chai", Price: dec("1.00"), Category: "Beverages"})
	require.NoError(t, err)
	_, err = f.svc.UpdateTemplateProduct(ctx, chai.Id, &models.NewTemplateProduct{Name: "Masala Chai", Price: dec("1.20"), Category: "Beverages"})
	require.NoError(t, err)
	_, err = f.svc.UpdateTemplateProduct(ctx, "missing", &models.NewTemplateProduct{Name: "X", Category: "Y"})
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)
	require.NoError(t, f.svc.DeleteTemplateProduct(ctx, "tp_7"))

	groups, err := f.svc.TemplateGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Starter Kit: Burgers", "Starter Kit: Cafe", "Beverages"}, groups)
}

func TestImportTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.CoffeeAdminEmail, "")

	product, err := f.svc.ImportTemplate(ctx, "tp_4")
	require.NoError(t, err)
	assert.NotEqual(t, "tp_4", product.Id)
	assert.Equal(t, "org_2", product.OrganizationId)
	assert.Equal(t, "Latte", product.Name)
	assert.Equal(t, models.CategoryBurgers, product.Category)

	_, err = f.svc.ImportTemplate(ctx, "tp_missing")
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)
}

func TestImportTemplateGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.BurgerAdminEmail, "")

	imported, err := f.svc.ImportTemplateGroup(ctx, "Starter Kit: Burgers")
	require.NoError(t, err)
	require.Len(t, imported, 3)
	for _, p := range imported {
		assert.Equal(t, "org_1", p.OrganizationId)
		assert.Equal(t, models.CategoryBurgers, p.Category)
	}

	products, err := f.svc.Products(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 6)

	none, err := f.svc.ImportTemplateGroup(ctx, "Nope")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func templateWorkbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("Sheet1", cellRef, &row))
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportTemplatesXLSX(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.SuperAdminEmail, "")

	buf := templateWorkbook(t,
		[]interface{}{"Name", "Weight", "Price", "WholesalePrice", "Image", "Category"},
		[]interface{}{"Mandazi", "60g", "1,000", "TSh 300", "", "Starter Kit: Bakery"},
		[]interface{}{},
		[]interface{}{"Juice", "300ml", "2.5", "0.7", "", "Beverages"},
	)

	imported, err := f.svc.ImportTemplatesXLSX(ctx, buf)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "Mandazi", imported[0].Name)
	assert.Equal(t, "1000", imported[0].Price.String())
	assert.Equal(t, "300", imported[0].WholesalePrice.String())
	assert.Equal(t, "Beverages", imported[1].Category)

	templates, err := f.svc.TemplateProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 9)
}

func TestImportTemplatesXLSX_RejectsBadRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, seed.SuperAdminEmail, "")

	buf := templateWorkbook(t,
		[]interface{}{"Chapati", "80g", "abc", "", "", "Bakery"},
	)
	_, err := f.svc.ImportTemplatesXLSX(ctx, buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")

	templates, err := f.svc.TemplateProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 7)

	f.login(t, seed.BurgerAdminEmail, "")
	_, err = f.svc.ImportTemplatesXLSX(ctx, templateWorkbook(t, []interface{}{"X"}))
	assert.ErrorIs(t, err, utils.ErrSuperAdminOnly)
}
