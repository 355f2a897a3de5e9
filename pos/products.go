package pos

import (
	"context"
	"strings"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
)

type ProductFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// Products lists the organization's products. Search matches the name case-insensitively;
// the category filter is skipped for super admins, who browse every category.
func (s *Service) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	applyCategory := filter.Category != "" && !strings.EqualFold(filter.Category, "all") && !s.session.IsSuperAdmin()

	out := []models.Product{}
	for _, p := range store.ForOrganization(s.store.Products.All(), orgId) {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if applyCategory && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) AddProduct(ctx context.Context, input *models.NewProduct) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Product{}, err
	}
	product, err := input.Build("", orgId)
	if err != nil {
		return models.Product{}, err
	}
	s.store.Products.Add(ctx, product)
	return product, nil
}

// UpdateProduct replaces product id with input. The owning organization never changes.
func (s *Service) UpdateProduct(ctx context.Context, id string, input *models.NewProduct) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Product{}, err
	}
	if _, err := store.GetScoped(s.store.Products, id, orgId); err != nil {
		return models.Product{}, err
	}
	product, err := input.Build(id, orgId)
	if err != nil {
		return models.Product{}, err
	}
	s.store.Products.Update(ctx, product)
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Products, id, orgId); err != nil {
		return err
	}
	s.store.Products.Delete(ctx, id)
	return nil
}
