package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
)

// Transactions is the ledger of the selected location, or of the whole organization when "all" is selected.
func (s *Service) Transactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForLocation(s.store.Transactions.All(), orgId, s.session.SelectedLocationId), nil
}

// AddTransaction records a manual ledger entry at the effective location.
func (s *Service) AddTransaction(ctx context.Context, input *models.NewTransaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	locId, err := s.writeLocation(orgId, "")
	if err != nil {
		return models.Transaction{}, err
	}
	tx, err := input.Build(orgId, locId, s.actorId(), s.now())
	if err != nil {
		return models.Transaction{}, err
	}
	s.store.Transactions.Add(ctx, tx)
	return tx, nil
}
