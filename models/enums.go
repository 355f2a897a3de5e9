package models

import "strings"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCashier    Role = "cashier"
	RoleWaiter     Role = "waiter"
	RoleSuperAdmin Role = "super_admin"
)

// GlobalOrganizationId is the organization id carried by super admins.
const GlobalOrganizationId = "global"

type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeOut  OrderType = "take-out"
	OrderTypeDelivery OrderType = "delivery"
)

type PaymentKind string

const (
	PaymentCash   PaymentKind = "cash"
	PaymentCredit PaymentKind = "credit"
)

type EmployeeStatus string

const (
	EmployeeClockedIn  EmployeeStatus = "clocked-in"
	EmployeeClockedOut EmployeeStatus = "clocked-out"
)

type Permission string

const (
	PermissionProcessRefund   Permission = "process_refund"
	PermissionVoidOrder       Permission = "void_order"
	PermissionApplyDiscount   Permission = "apply_discount"
	PermissionManageInventory Permission = "manage_inventory"
	PermissionViewReports     Permission = "view_reports"
)

type LocationType string

const (
	LocationHQ     LocationType = "HQ"
	LocationBranch LocationType = "Branch"
	LocationPopUp  LocationType = "Pop-up"
)

type LocationStatus string

const (
	LocationActive   LocationStatus = "active"
	LocationInactive LocationStatus = "inactive"
)

// Product categories.
const (
	CategoryBurgers  = "Burgers"
	CategoryDrinks   = "Drinks"
	CategorySides    = "Sides"
	CategoryDesserts = "Desserts"
	CategoryCoffee   = "Coffee"
	CategoryBakery   = "Bakery"
)

var ProductCategories = []string{CategoryBurgers, CategoryDrinks, CategorySides, CategoryDesserts, CategoryCoffee, CategoryBakery}

// Ledger categories.
const (
	CategoryFoodSales       = "Food Sales"
	CategoryBeverageSales   = "Beverage Sales"
	CategoryCatering        = "Catering"
	CategoryEvents          = "Events"
	CategoryOther           = "Other"
	CategoryInventory       = "Inventory"
	CategoryCostOfGoodsSold = "Cost of Goods Sold"
	CategoryRent            = "Rent"
	CategoryUtilities       = "Utilities"
	CategorySalaries        = "Salaries"
	CategoryMaintenance     = "Maintenance"
	CategoryMarketing       = "Marketing"
	CategoryWaste           = "Waste"
)

var IncomeCategories = []string{CategoryFoodSales, CategoryBeverageSales, CategoryCatering, CategoryEvents, CategoryOther}

var ExpenseCategories = []string{
	CategoryInventory, CategoryCostOfGoodsSold, CategoryRent, CategoryUtilities,
	CategorySalaries, CategoryMaintenance, CategoryMarketing, CategoryWaste,
}

func IsIncomeCategory(category string) bool {
	return contains(IncomeCategories, category)
}

func IsExpenseCategory(category string) bool {
	return contains(ExpenseCategories, category)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// MatchProductCategory finds the product category named in label, e.g. "Starter Kit: Burgers" -> "Burgers".
func MatchProductCategory(label string) (string, bool) {
	if i := strings.LastIndex(label, ":"); i >= 0 {
		label = label[i+1:]
	}
	label = strings.TrimSpace(label)
	for _, c := range ProductCategories {
		if strings.EqualFold(c, label) {
			return c, true
		}
	}
	return "", false
}
