package storage

// Keys of the persisted collections. The adapter prepends its prefix.
// The cart is session state and has no key.
const (
	KeyCurrentUser      = "current_user"
	KeyCurrentOrg       = "current_org"
	KeyOrganizations    = "orgs"
	KeyUsers            = "users"
	KeySettings         = "settings"
	KeyProducts         = "products"
	KeyTemplateProducts = "template_products"
	KeyCustomers        = "customers"
	KeyTransactions     = "transactions"
	KeyInventory        = "inventory"
	KeyTables           = "tables"
	KeyEmployees        = "employees"
	KeyShifts           = "shifts"
	KeyLocations        = "locations"
)

var AllKeys = []string{
	KeyCurrentUser, KeyCurrentOrg, KeyOrganizations, KeyUsers, KeySettings,
	KeyProducts, KeyTemplateProducts, KeyCustomers, KeyTransactions,
	KeyInventory, KeyTables, KeyEmployees, KeyShifts, KeyLocations,
}
