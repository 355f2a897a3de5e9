package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
)

func (s *Service) Customers(ctx context.Context) ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForOrganization(s.store.Customers.All(), orgId), nil
}

func (s *Service) AddCustomer(ctx context.Context, input *models.NewCustomer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Customer{}, err
	}
	customer, err := input.Build("", orgId)
	if err != nil {
		return models.Customer{}, err
	}
	s.store.Customers.Add(ctx, customer)
	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, input *models.NewCustomer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Customer{}, err
	}
	if _, err := store.GetScoped(s.store.Customers, id, orgId); err != nil {
		return models.Customer{}, err
	}
	customer, err := input.Build(id, orgId)
	if err != nil {
		return models.Customer{}, err
	}
	s.store.Customers.Update(ctx, customer)
	return customer, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Customers, id, orgId); err != nil {
		return err
	}
	s.store.Customers.Delete(ctx, id)
	return nil
}
