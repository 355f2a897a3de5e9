package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
)

func (s *Service) Locations(ctx context.Context) ([]models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForOrganization(s.store.Locations.All(), orgId), nil
}

func (s *Service) AddLocation(ctx context.Context, input *models.NewLocation) (models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Location{}, err
	}
	location, err := input.Build("", orgId)
	if err != nil {
		return models.Location{}, err
	}
	s.store.Locations.Add(ctx, location)
	return location, nil
}

func (s *Service) UpdateLocation(ctx context.Context, id string, input *models.NewLocation) (models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Location{}, err
	}
	if _, err := store.GetScoped(s.store.Locations, id, orgId); err != nil {
		return models.Location{}, err
	}
	location, err := input.Build(id, orgId)
	if err != nil {
		return models.Location{}, err
	}
	s.store.Locations.Update(ctx, location)
	return location, nil
}

// DeleteLocation removes the location. Records stamped with it are left as they are;
// a selection pointing at it falls back to every location.
func (s *Service) DeleteLocation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Locations, id, orgId); err != nil {
		return err
	}
	s.store.Locations.Delete(ctx, id)
	if s.session.SelectedLocationId == id {
		s.session.SelectLocation(models.AllLocations)
	}
	return nil
}
