package pos

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// TemplateProducts lists the shared catalog. Any logged-in user may browse it.
func (s *Service) TemplateProducts(ctx context.Context) ([]models.TemplateProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return nil, utils.ErrNotLoggedIn
	}
	return s.store.TemplateProducts.All(), nil
}

func (s *Service) AddTemplateProduct(ctx context.Context, input *models.NewTemplateProduct) (models.TemplateProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSuperAdmin(); err != nil {
		return models.TemplateProduct{}, err
	}
	tpl, err := input.Build("")
	if err != nil {
		return models.TemplateProduct{}, err
	}
	s.store.TemplateProducts.Add(ctx, tpl)
	return tpl, nil
}

func (s *Service) UpdateTemplateProduct(ctx context.Context, id string, input *models.NewTemplateProduct) (models.TemplateProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSuperAdmin(); err != nil {
		return models.TemplateProduct{}, err
	}
	if _, ok := s.store.TemplateProducts.Get(id); !ok {
		return models.TemplateProduct{}, utils.ErrorRecordNotFound
	}
	tpl, err := input.Build(id)
	if err != nil {
		return models.TemplateProduct{}, err
	}
	s.store.TemplateProducts.Update(ctx, tpl)
	return tpl, nil
}

func (s *Service) DeleteTemplateProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSuperAdmin(); err != nil {
		return err
	}
	s.store.TemplateProducts.Delete(ctx, id)
	return nil
}

// ImportTemplate copies one template into the effective organization's menu.
func (s *Service) ImportTemplate(ctx context.Context, templateId string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Product{}, err
	}
	tpl, ok := s.store.TemplateProducts.Get(templateId)
	if !ok {
		return models.Product{}, utils.ErrorRecordNotFound
	}
	product := tpl.ToProduct(orgId)
	s.store.Products.Add(ctx, product)
	return product, nil
}

// ImportTemplateGroup copies every template labelled group.
func (s *Service) ImportTemplateGroup(ctx context.Context, group string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	imported := []models.Product{}
	for _, tpl := range s.store.TemplateProducts.All() {
		if tpl.Category == group {
			imported = append(imported, tpl.ToProduct(orgId))
		}
	}
	if len(imported) == 0 {
		return imported, nil
	}
	s.store.Commit(ctx, s.store.Products.Stage(append(s.store.Products.All(), imported...)))
	return imported, nil
}

// TemplateGroups lists the distinct template group labels in catalog order.
func (s *Service) TemplateGroups(ctx context.Context) ([]string, error) {
	templates, err := s.TemplateProducts(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	groups := []string{}
	for _, tpl := range templates {
		if !seen[tpl.Category] {
			seen[tpl.Category] = true
			groups = append(groups, tpl.Category)
		}
	}
	return groups, nil
}

var templateSheetHeaders = []string{"Name", "Weight", "Price", "WholesalePrice", "Image", "Category"}

// ImportTemplatesXLSX adds one template per data row of the first sheet.
// Columns: Name, Weight, Price, WholesalePrice, Image, Category.
func (s *Service) ImportTemplatesXLSX(ctx context.Context, r io.Reader) ([]models.TemplateProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSuperAdmin(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	imported := []models.TemplateProduct{}
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), templateSheetHeaders[0]) {
			continue
		}
		if isBlankRow(row) {
			continue
		}
		input, err := templateFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		tpl, err := input.Build("")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		imported = append(imported, tpl)
	}
	if len(imported) > 0 {
		s.store.Commit(ctx, s.store.TemplateProducts.Stage(append(s.store.TemplateProducts.All(), imported...)))
	}
	return imported, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func templateFromRow(row []string) (*models.NewTemplateProduct, error) {
	price := decimal.Zero
	if raw := cell(row, 2); raw != "" {
		p, err := utils.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("price %q: %w", raw, err)
		}
		price = p
	}
	wholesale := decimal.Zero
	if raw := cell(row, 3); raw != "" {
		w, err := utils.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("wholesale price %q: %w", raw, err)
		}
		wholesale = w
	}
	return &models.NewTemplateProduct{
		Name:           cell(row, 0),
		Weight:         cell(row, 1),
		Price:          price,
		WholesalePrice: wholesale,
		Image:          cell(row, 4),
		Category:       cell(row, 5),
	}, nil
}
