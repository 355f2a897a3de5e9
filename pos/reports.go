package pos

import (
	"context"
	"io"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/reports"
	"github.com/mmdatafocus/smartpos_backend/store"
)

// The location-scoped reports follow the location selection like every other read.

func (s *Service) FinancialSummary(ctx context.Context) (reports.FinancialSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return reports.FinancialSummary{}, err
	}
	return reports.Summarize(s.scopedTransactions(orgId)), nil
}

func (s *Service) ExpenseByCategory(ctx context.Context) ([]reports.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return reports.ExpenseByCategory(s.scopedTransactions(orgId)), nil
}

func (s *Service) LowStock(ctx context.Context) ([]models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return reports.LowStock(store.ForLocation(s.store.Inventory.All(), orgId, s.session.SelectedLocationId)), nil
}

func (s *Service) Payroll(ctx context.Context) ([]reports.StaffPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return reports.Payroll(
		store.ForLocation(s.store.Employees.All(), orgId, s.session.SelectedLocationId),
		store.ForOrganization(s.store.Shifts.All(), orgId),
		store.ForOrganization(s.store.Transactions.All(), orgId),
	), nil
}

// LocationOverview covers every location of the organization regardless of the selection.
func (s *Service) LocationOverview(ctx context.Context) ([]reports.LocationOverview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return reports.Locations(
		store.ForOrganization(s.store.Locations.All(), orgId),
		store.ForOrganization(s.store.Transactions.All(), orgId),
		store.ForOrganization(s.store.Employees.All(), orgId),
	), nil
}

// ExportLedger writes the scoped ledger as an XLSX workbook in the configured display currency.
func (s *Service) ExportLedger(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	names := map[string]string{}
	for _, loc := range store.ForOrganization(s.store.Locations.All(), orgId) {
		names[loc.Id] = loc.Name
	}
	currency, ok := models.Currencies[s.store.Settings().Currency]
	if !ok {
		currency = models.Currencies[models.CurrencyUSD]
	}
	return reports.ExportLedger(w, s.scopedTransactions(orgId), names, currency)
}

func (s *Service) scopedTransactions(organizationId string) []models.Transaction {
	return store.ForLocation(s.store.Transactions.All(), organizationId, s.session.SelectedLocationId)
}
