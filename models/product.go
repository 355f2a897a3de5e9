package models

import (
	"strings"

	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

// RecipeItem references the ingredient consumed per unit of product sold.
type RecipeItem struct {
	IngredientId string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type Product struct {
	Id             string          `json:"id"`
	OrganizationId string          `json:"organizationId"`
	Name           string          `json:"name"`
	Weight         string          `json:"weight"`
	Price          decimal.Decimal `json:"price"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	Image          string          `json:"image"`
	Category       string          `json:"category"`
	Recipe         []RecipeItem    `json:"recipe,omitempty"`
}

func (p Product) GetId() string             { return p.Id }
func (p Product) GetOrganizationId() string { return p.OrganizationId }

// TemplateProduct is a catalog entry any organization can import.
type TemplateProduct struct {
	Id             string          `json:"id"`
	Name           string          `json:"name"`
	Weight         string          `json:"weight"`
	Price          decimal.Decimal `json:"price"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	Image          string          `json:"image"`
	Category       string          `json:"category"`
}

func (t TemplateProduct) GetId() string { return t.Id }

// ToProduct copies the template into organizationId under a fresh id.
// The template group label maps to a product category, defaulting to Burgers.
func (t TemplateProduct) ToProduct(organizationId string) Product {
	category, ok := MatchProductCategory(t.Category)
	if !ok {
		category = CategoryBurgers
	}
	return Product{
		Id:             utils.NewId(),
		OrganizationId: organizationId,
		Name:           t.Name,
		Weight:         t.Weight,
		Price:          t.Price,
		WholesalePrice: t.WholesalePrice,
		Image:          t.Image,
		Category:       category,
	}
}

type NewRecipeItem struct {
	IngredientId string          `json:"ingredientId" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type NewProduct struct {
	Name           string          `json:"name" validate:"required"`
	Weight         string          `json:"weight"`
	Price          decimal.Decimal `json:"price"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	Image          string          `json:"image"`
	Category       string          `json:"category" validate:"required"`
	Recipe         []NewRecipeItem `json:"recipe" validate:"dive"`
}

func (input *NewProduct) validate() error {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.Price.IsNegative() {
		return utils.NewValidationError("Price", "gte")
	}
	if input.WholesalePrice.IsNegative() {
		return utils.NewValidationError("WholesalePrice", "gte")
	}
	for _, item := range input.Recipe {
		if !item.Quantity.IsPositive() {
			return utils.NewValidationError("Recipe.Quantity", "gt")
		}
	}
	return nil
}

// Build validates input and returns the complete product. An empty id gets a new one.
func (input *NewProduct) Build(id string, organizationId string) (Product, error) {
	if err := input.validate(); err != nil {
		return Product{}, err
	}
	if id == "" {
		id = utils.NewId()
	}
	var recipe []RecipeItem
	for _, item := range input.Recipe {
		recipe = append(recipe, RecipeItem{IngredientId: item.IngredientId, Quantity: item.Quantity})
	}
	return Product{
		Id:             id,
		OrganizationId: organizationId,
		Name:           input.Name,
		Weight:         input.Weight,
		Price:          input.Price,
		WholesalePrice: input.WholesalePrice,
		Image:          input.Image,
		Category:       input.Category,
		Recipe:         recipe,
	}, nil
}

type NewTemplateProduct struct {
	Name           string          `json:"name" validate:"required"`
	Weight         string          `json:"weight"`
	Price          decimal.Decimal `json:"price"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	Image          string          `json:"image"`
	Category       string          `json:"category" validate:"required"`
}

func (input *NewTemplateProduct) Build(id string) (TemplateProduct, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := utils.ValidateStruct(input); err != nil {
		return TemplateProduct{}, err
	}
	if input.Price.IsNegative() {
		return TemplateProduct{}, utils.NewValidationError("Price", "gte")
	}
	if input.WholesalePrice.IsNegative() {
		return TemplateProduct{}, utils.NewValidationError("WholesalePrice", "gte")
	}
	if id == "" {
		id = utils.NewId()
	}
	return TemplateProduct{
		Id:             id,
		Name:           input.Name,
		Weight:         input.Weight,
		Price:          input.Price,
		WholesalePrice: input.WholesalePrice,
		Image:          input.Image,
		Category:       input.Category,
	}, nil
}
