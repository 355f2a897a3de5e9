// Package seed holds the demo tenants used when storage is empty.
package seed

import (
	"time"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/shopspring/decimal"
)

const (
	SuperAdminEmail  = "super@smartpos.com"
	BurgerAdminEmail = "admin@burger.com"
	CoffeeAdminEmail = "admin@coffee.com"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Demo returns two organizations with users, locations, menu, stock, tables, staff and a
// small ledger. Timestamps are relative to now.
func Demo(now time.Time) store.Seed {
	settings := models.DefaultSettings()
	shiftEnd := now.Add(-time.Hour)
	shift := models.Shift{
		Id:             "s1",
		OrganizationId: "org_1",
		EmployeeId:     "e1_o1",
		StartTime:      now.Add(-8 * time.Hour),
	}.Close(shiftEnd)

	return store.Seed{
		Organizations: []models.Organization{
			{Id: "org_1", Name: "Burger King Tz", Slug: "burger-king", OwnerId: "u_admin_1", Plan: models.PlanPro, CreatedAt: now},
			{Id: "org_2", Name: "Zanzibar Coffee House", Slug: "zan-coffee", OwnerId: "u_admin_2", Plan: models.PlanFree, CreatedAt: now},
		},
		Users: []models.User{
			{Id: "u_super", Name: "Super Admin", Email: SuperAdminEmail, Role: models.RoleSuperAdmin, OrganizationId: models.GlobalOrganizationId},
			{Id: "u_admin_1", Name: "Burger Admin", Email: BurgerAdminEmail, Role: models.RoleAdmin, OrganizationId: "org_1"},
			{Id: "u_admin_2", Name: "Coffee Admin", Email: CoffeeAdminEmail, Role: models.RoleAdmin, OrganizationId: "org_2"},
		},
		Locations: []models.Location{
			{Id: "loc1_o1", OrganizationId: "org_1", Name: "Posta Branch", Address: "Posta, Dar", Phone: "+255 111", Type: models.LocationHQ, Status: models.LocationActive},
			{Id: "loc2_o1", OrganizationId: "org_1", Name: "Mlimani City", Address: "Mlimani, Dar", Phone: "+255 222", Type: models.LocationBranch, Status: models.LocationActive},
			{Id: "loc1_o2", OrganizationId: "org_2", Name: "Stone Town", Address: "Zanzibar", Phone: "+255 333", Type: models.LocationHQ, Status: models.LocationActive},
		},
		TemplateProducts: []models.TemplateProduct{
			{Id: "tp_1", Name: "Classic Burger", Weight: "200g", Price: dec("5.00"), WholesalePrice: dec("2.00"), Category: "Starter Kit: Burgers"},
			{Id: "tp_2", Name: "Cheeseburger Deluxe", Weight: "250g", Price: dec("6.50"), WholesalePrice: dec("2.50"), Category: "Starter Kit: Burgers"},
			{Id: "tp_3", Name: "Veggie Burger", Weight: "180g", Price: dec("5.50"), WholesalePrice: dec("1.80"), Category: "Starter Kit: Burgers"},
			{Id: "tp_4", Name: "Latte", Weight: "300ml", Price: dec("3.50"), WholesalePrice: dec("0.80"), Category: "Starter Kit: Cafe"},
			{Id: "tp_5", Name: "Iced Coffee", Weight: "400ml", Price: dec("4.00"), WholesalePrice: dec("1.00"), Category: "Starter Kit: Cafe"},
			{Id: "tp_6", Name: "Blueberry Muffin", Weight: "100g", Price: dec("2.50"), WholesalePrice: dec("0.50"), Category: "Starter Kit: Cafe"},
			{Id: "tp_7", Name: "Sparkling Water", Weight: "500ml", Price: dec("2.00"), WholesalePrice: dec("0.50"), Category: "Beverages"},
		},
		Products: []models.Product{
			{Id: "p1_o1", OrganizationId: "org_1", Name: "Cheeseburger", Weight: "150 g", Price: dec("3.50"), WholesalePrice: dec("1.50"), Category: models.CategoryBurgers,
				Recipe: []models.RecipeItem{{IngredientId: "i1_o1", Quantity: dec("1")}}},
			{Id: "p2_o1", OrganizationId: "org_1", Name: "Fries", Weight: "150 g", Price: dec("2.50"), WholesalePrice: dec("0.50"), Category: models.CategorySides},
			{Id: "p3_o1", OrganizationId: "org_1", Name: "Cola", Weight: "330 ml", Price: dec("1.50"), WholesalePrice: dec("0.40"), Category: models.CategoryDrinks},
			{Id: "p1_o2", OrganizationId: "org_2", Name: "Espresso", Weight: "30 ml", Price: dec("2.00"), WholesalePrice: dec("0.50"), Category: models.CategoryCoffee},
			{Id: "p2_o2", OrganizationId: "org_2", Name: "Cappuccino", Weight: "200 ml", Price: dec("3.50"), WholesalePrice: dec("1.00"), Category: models.CategoryCoffee},
			{Id: "p3_o2", OrganizationId: "org_2", Name: "Croissant", Weight: "80 g", Price: dec("2.50"), WholesalePrice: dec("0.80"), Category: models.CategoryBakery},
		},
		Inventory: []models.Ingredient{
			{Id: "i1_o1", OrganizationId: "org_1", LocationId: "loc1_o1", Sku: "BUN", Name: "Burger Bun", Unit: "pcs", Quantity: dec("150"), CostPerUnit: dec("0.20"), LowStockThreshold: dec("20")},
			{Id: "i2_o1", OrganizationId: "org_1", LocationId: "loc1_o1", Sku: "PATTY", Name: "Beef Patty", Unit: "pcs", Quantity: dec("80"), CostPerUnit: dec("1.00"), LowStockThreshold: dec("15")},
			{Id: "i3_o1", OrganizationId: "org_1", LocationId: "loc2_o1", Sku: "BUN", Name: "Burger Bun", Unit: "pcs", Quantity: dec("60"), CostPerUnit: dec("0.20"), LowStockThreshold: dec("20")},
			{Id: "i1_o2", OrganizationId: "org_2", LocationId: "loc1_o2", Sku: "BEANS", Name: "Coffee Beans", Unit: "kg", Quantity: dec("10"), CostPerUnit: dec("15.00"), LowStockThreshold: dec("2")},
			{Id: "i2_o2", OrganizationId: "org_2", LocationId: "loc1_o2", Sku: "MILK", Name: "Milk", Unit: "l", Quantity: dec("20"), CostPerUnit: dec("1.20"), LowStockThreshold: dec("5")},
		},
		Tables: []models.Table{
			{Id: "t1_o1", OrganizationId: "org_1", LocationId: "loc1_o1", Name: "Table 1", Seats: 4, Status: models.TableAvailable},
			{Id: "t2_o1", OrganizationId: "org_1", LocationId: "loc1_o1", Name: "Table 2", Seats: 2, Status: models.TableOccupied},
			{Id: "t1_o2", OrganizationId: "org_2", LocationId: "loc1_o2", Name: "Patio 1", Seats: 4, Status: models.TableAvailable},
		},
		Employees: []models.Employee{
			{Id: "e1_o1", OrganizationId: "org_1", LocationId: "loc1_o1", Name: "Burger Admin", Role: models.RoleAdmin, Pin: "1234", HourlyRate: dec("25.00"), Status: models.EmployeeClockedIn,
				Permissions: []models.Permission{models.PermissionProcessRefund, models.PermissionVoidOrder, models.PermissionManageInventory}, Email: BurgerAdminEmail},
			{Id: "e2_o1", OrganizationId: "org_1", LocationId: "loc1_o1", Name: "John Cook", Role: models.RoleWaiter, Pin: "1111", HourlyRate: dec("15.00"), Status: models.EmployeeClockedOut,
				Permissions: []models.Permission{}},
			{Id: "e1_o2", OrganizationId: "org_2", LocationId: "loc1_o2", Name: "Coffee Admin", Role: models.RoleAdmin, Pin: "1234", HourlyRate: dec("20.00"), Status: models.EmployeeClockedIn,
				Permissions: []models.Permission{models.PermissionProcessRefund}, Email: CoffeeAdminEmail},
		},
		Shifts: []models.Shift{shift},
		Customers: []models.Customer{
			{Id: "c1", OrganizationId: "org_1", Name: "Alice Freeman", Email: "alice@example.com", Phone: "555-0101", Balance: decimal.Zero},
			{Id: "c2", OrganizationId: "org_2", Name: "Bob CoffeeLover", Email: "bob@example.com", Phone: "555-0102", Balance: dec("10")},
		},
		Transactions: []models.Transaction{
			{Id: "tx1", OrganizationId: "org_1", LocationId: "loc1_o1", Date: now, Type: models.TransactionTypeIncome, Category: models.CategoryFoodSales, Amount: dec("50"), Description: "Order #1", EmployeeId: "e1_o1"},
			{Id: "tx2", OrganizationId: "org_2", LocationId: "loc1_o2", Date: now, Type: models.TransactionTypeIncome, Category: models.CategoryBeverageSales, Amount: dec("15"), Description: "Coffee Order", EmployeeId: "e1_o2"},
		},
		Settings: &settings,
	}
}
