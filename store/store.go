package store

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/storage"
)

// Change is one staged collection replacement, applied by Store.Commit.
type Change struct {
	key   string
	apply func() interface{}
}

// Seed holds the records used for collections that have nothing persisted yet.
type Seed struct {
	Organizations    []models.Organization
	Users            []models.User
	Products         []models.Product
	TemplateProducts []models.TemplateProduct
	Customers        []models.Customer
	Transactions     []models.Transaction
	Inventory        []models.Ingredient
	Tables           []models.Table
	Employees        []models.Employee
	Shifts           []models.Shift
	Locations        []models.Location
	Settings         *models.AppSettings
}

// Store holds one collection per entity type plus the persisted session singletons.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	adapter *storage.Adapter

	Organizations    *Collection[models.Organization]
	Users            *Collection[models.User]
	Products         *Collection[models.Product]
	TemplateProducts *Collection[models.TemplateProduct]
	Customers        *Collection[models.Customer]
	Transactions     *Collection[models.Transaction]
	Inventory        *Collection[models.Ingredient]
	Tables           *Collection[models.Table]
	Employees        *Collection[models.Employee]
	Shifts           *Collection[models.Shift]
	Locations        *Collection[models.Location]

	settings    models.AppSettings
	currentUser *models.User
	currentOrg  string
}

func New(adapter *storage.Adapter) *Store {
	return &Store{
		adapter:          adapter,
		Organizations:    newCollection[models.Organization](storage.KeyOrganizations, adapter),
		Users:            newCollection[models.User](storage.KeyUsers, adapter),
		Products:         newCollection[models.Product](storage.KeyProducts, adapter),
		TemplateProducts: newCollection[models.TemplateProduct](storage.KeyTemplateProducts, adapter),
		Customers:        newCollection[models.Customer](storage.KeyCustomers, adapter),
		Transactions:     newCollection[models.Transaction](storage.KeyTransactions, adapter),
		Inventory:        newCollection[models.Ingredient](storage.KeyInventory, adapter),
		Tables:           newCollection[models.Table](storage.KeyTables, adapter),
		Employees:        newCollection[models.Employee](storage.KeyEmployees, adapter),
		Shifts:           newCollection[models.Shift](storage.KeyShifts, adapter),
		Locations:        newCollection[models.Location](storage.KeyLocations, adapter),
		settings:         models.DefaultSettings(),
	}
}

// Load hydrates every collection from storage, falling back to seed.
func (s *Store) Load(ctx context.Context, seed Seed) {
	s.Organizations.load(ctx, seed.Organizations)
	s.Users.load(ctx, seed.Users)
	s.Products.load(ctx, seed.Products)
	s.TemplateProducts.load(ctx, seed.TemplateProducts)
	s.Customers.load(ctx, seed.Customers)
	s.Transactions.load(ctx, seed.Transactions)
	s.Inventory.load(ctx, seed.Inventory)
	s.Tables.load(ctx, seed.Tables)
	s.Employees.load(ctx, seed.Employees)
	s.Shifts.load(ctx, seed.Shifts)
	s.Locations.load(ctx, seed.Locations)

	def := models.DefaultSettings()
	if seed.Settings != nil {
		def = *seed.Settings
	}
	s.settings = storage.LoadOr(ctx, s.adapter, storage.KeySettings, def)
	s.currentUser = storage.LoadOr[*models.User](ctx, s.adapter, storage.KeyCurrentUser, nil)
	s.currentOrg = storage.LoadOr(ctx, s.adapter, storage.KeyCurrentOrg, "")
}

// Persist writes every collection and singleton in one commit.
func (s *Store) Persist(ctx context.Context) {
	s.adapter.SaveMany(ctx, map[string]interface{}{
		storage.KeyOrganizations:    s.Organizations.items,
		storage.KeyUsers:            s.Users.items,
		storage.KeyProducts:         s.Products.items,
		storage.KeyTemplateProducts: s.TemplateProducts.items,
		storage.KeyCustomers:        s.Customers.items,
		storage.KeyTransactions:     s.Transactions.items,
		storage.KeyInventory:        s.Inventory.items,
		storage.KeyTables:           s.Tables.items,
		storage.KeyEmployees:        s.Employees.items,
		storage.KeyShifts:           s.Shifts.items,
		storage.KeyLocations:        s.Locations.items,
		storage.KeySettings:         s.settings,
	})
}

// Commit applies every change in memory and persists them with a single SaveMany.
func (s *Store) Commit(ctx context.Context, changes ...Change) {
	values := make(map[string]interface{}, len(changes))
	for _, ch := range changes {
		values[ch.key] = ch.apply()
	}
	s.adapter.SaveMany(ctx, values)
}

func (s *Store) Settings() models.AppSettings {
	return s.settings
}

func (s *Store) SetSettings(ctx context.Context, settings models.AppSettings) {
	s.settings = settings
	s.adapter.Save(ctx, storage.KeySettings, settings)
}

// CurrentUser is the persisted logged-in user, nil when logged out.
func (s *Store) CurrentUser() *models.User {
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// CurrentOrganization is the persisted organization selection.
func (s *Store) CurrentOrganization() string {
	return s.currentOrg
}

func (s *Store) SetSession(ctx context.Context, user *models.User, organizationId string) {
	if user != nil {
		u := *user
		user = &u
	}
	s.currentUser = user
	s.currentOrg = organizationId
	s.adapter.SaveMany(ctx, map[string]interface{}{
		storage.KeyCurrentUser: user,
		storage.KeyCurrentOrg:  organizationId,
	})
}

// Clear wipes storage and empties every collection.
func (s *Store) Clear(ctx context.Context) {
	s.adapter.Clear(ctx)
	s.Load(ctx, Seed{})
}
