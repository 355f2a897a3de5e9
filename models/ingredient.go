package models

import (
	"strings"

	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

// Ingredient is stock held at one location. Sku identifies the same stock item across locations.
type Ingredient struct {
	Id                string          `json:"id"`
	OrganizationId    string          `json:"organizationId"`
	LocationId        string          `json:"locationId"`
	Sku               string          `json:"sku,omitempty"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	Quantity          decimal.Decimal `json:"quantity"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
}

func (i Ingredient) GetId() string             { return i.Id }
func (i Ingredient) GetOrganizationId() string { return i.OrganizationId }
func (i Ingredient) GetLocationId() string     { return i.LocationId }

func (i Ingredient) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.LowStockThreshold)
}

type NewIngredient struct {
	Sku               string          `json:"sku"`
	Name              string          `json:"name" validate:"required"`
	Unit              string          `json:"unit" validate:"required"`
	Quantity          decimal.Decimal `json:"quantity"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
	LocationId        string          `json:"locationId"`
}

func (input *NewIngredient) Build(id, organizationId, locationId string) (Ingredient, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Unit = strings.TrimSpace(input.Unit)
	if err := utils.ValidateStruct(input); err != nil {
		return Ingredient{}, err
	}
	if input.Quantity.IsNegative() {
		return Ingredient{}, utils.NewValidationError("Quantity", "gte")
	}
	if input.CostPerUnit.IsNegative() {
		return Ingredient{}, utils.NewValidationError("CostPerUnit", "gte")
	}
	if id == "" {
		id = utils.NewId()
	}
	return Ingredient{
		Id:                id,
		OrganizationId:    organizationId,
		LocationId:        locationId,
		Sku:               strings.ToUpper(strings.TrimSpace(input.Sku)),
		Name:              input.Name,
		Unit:              input.Unit,
		Quantity:          input.Quantity,
		CostPerUnit:       input.CostPerUnit,
		LowStockThreshold: input.LowStockThreshold,
	}, nil
}
