package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/utils"
)

func (s *Service) Tables(ctx context.Context) ([]models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForLocation(s.store.Tables.All(), orgId, s.session.SelectedLocationId), nil
}

func (s *Service) AddTable(ctx context.Context, input *models.NewTable) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Table{}, err
	}
	locId, err := s.writeLocation(orgId, input.LocationId)
	if err != nil {
		return models.Table{}, err
	}
	table, err := input.Build("", orgId, locId)
	if err != nil {
		return models.Table{}, err
	}
	s.store.Tables.Add(ctx, table)
	return table, nil
}

func (s *Service) UpdateTable(ctx context.Context, id string, input *models.NewTable) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Table{}, err
	}
	existing, err := store.GetScoped(s.store.Tables, id, orgId)
	if err != nil {
		return models.Table{}, err
	}
	locId := existing.LocationId
	if input.LocationId != "" {
		if locId, err = s.writeLocation(orgId, input.LocationId); err != nil {
			return models.Table{}, err
		}
	}
	if input.Status == "" {
		input.Status = existing.Status
	}
	table, err := input.Build(id, orgId, locId)
	if err != nil {
		return models.Table{}, err
	}
	s.store.Tables.Update(ctx, table)
	return table, nil
}

func (s *Service) DeleteTable(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Tables, id, orgId); err != nil {
		return err
	}
	s.store.Tables.Delete(ctx, id)
	return nil
}

func (s *Service) SetTableStatus(ctx context.Context, id string, status models.TableStatus) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.IsValid() {
		return models.Table{}, utils.NewValidationError("Status", "oneof")
	}
	return s.setTableStatus(ctx, id, func(models.TableStatus) (models.TableStatus, bool) { return status, true })
}

// AdvanceTableStatus moves the table one step along available, occupied, dirty. Reserved tables become occupied.
func (s *Service) AdvanceTableStatus(ctx context.Context, id string) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setTableStatus(ctx, id, models.NextTableStatus)
}

func (s *Service) setTableStatus(ctx context.Context, id string, next func(models.TableStatus) (models.TableStatus, bool)) (models.Table, error) {
	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Table{}, err
	}
	table, err := store.GetScoped(s.store.Tables, id, orgId)
	if err != nil {
		return models.Table{}, err
	}
	status, ok := next(table.Status)
	if !ok {
		return models.Table{}, utils.ErrInvalidTransition
	}
	table.Status = status
	s.store.Tables.Update(ctx, table)
	return table, nil
}
