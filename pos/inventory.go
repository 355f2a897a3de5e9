package pos

import (
	"context"
	"fmt"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

func (s *Service) Inventory(ctx context.Context) ([]models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	return store.ForLocation(s.store.Inventory.All(), orgId, s.session.SelectedLocationId), nil
}

func (s *Service) AddIngredient(ctx context.Context, input *models.NewIngredient) (models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Ingredient{}, err
	}
	locId, err := s.writeLocation(orgId, input.LocationId)
	if err != nil {
		return models.Ingredient{}, err
	}
	ingredient, err := input.Build("", orgId, locId)
	if err != nil {
		return models.Ingredient{}, err
	}
	s.store.Inventory.Add(ctx, ingredient)
	return ingredient, nil
}

// UpdateIngredient replaces the ingredient; its location is kept unless input names another one.
func (s *Service) UpdateIngredient(ctx context.Context, id string, input *models.NewIngredient) (models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Ingredient{}, err
	}
	existing, err := store.GetScoped(s.store.Inventory, id, orgId)
	if err != nil {
		return models.Ingredient{}, err
	}
	locId := existing.LocationId
	if input.LocationId != "" {
		if locId, err = s.writeLocation(orgId, input.LocationId); err != nil {
			return models.Ingredient{}, err
		}
	}
	ingredient, err := input.Build(id, orgId, locId)
	if err != nil {
		return models.Ingredient{}, err
	}
	s.store.Inventory.Update(ctx, ingredient)
	return ingredient, nil
}

func (s *Service) DeleteIngredient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if _, err := store.GetScoped(s.store.Inventory, id, orgId); err != nil {
		return err
	}
	s.store.Inventory.Delete(ctx, id)
	return nil
}

// SetStock overwrites the on-hand quantity without touching the ledger.
func (s *Service) SetStock(ctx context.Context, id string, quantity decimal.Decimal) (models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return models.Ingredient{}, err
	}
	ingredient, err := store.GetScoped(s.store.Inventory, id, orgId)
	if err != nil {
		return models.Ingredient{}, err
	}
	if quantity.IsNegative() {
		return models.Ingredient{}, utils.NewValidationError("Quantity", "gte")
	}
	ingredient.Quantity = quantity
	s.store.Inventory.Update(ctx, ingredient)
	return ingredient, nil
}

// StockMovement is the result of a restock or a waste entry.
type StockMovement struct {
	Ingredient  models.Ingredient  `json:"ingredient"`
	Transaction models.Transaction `json:"transaction"`
}

// Restock adds amount to the ingredient and books its cost as an Inventory expense.
func (s *Service) Restock(ctx context.Context, id string, amount decimal.Decimal) (StockMovement, error) {
	return s.moveStock(ctx, id, amount, models.CategoryInventory, "Restock")
}

// RecordWaste removes amount from the ingredient, never going below zero, and books the loss as a Waste expense.
func (s *Service) RecordWaste(ctx context.Context, id string, amount decimal.Decimal) (StockMovement, error) {
	return s.moveStock(ctx, id, amount, models.CategoryWaste, "Waste")
}

func (s *Service) moveStock(ctx context.Context, id string, amount decimal.Decimal, category, label string) (StockMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return StockMovement{}, err
	}
	if !amount.IsPositive() {
		return StockMovement{}, utils.ErrInvalidAmount
	}
	ingredient, err := store.GetScoped(s.store.Inventory, id, orgId)
	if err != nil {
		return StockMovement{}, err
	}

	if category == models.CategoryInventory {
		ingredient.Quantity = ingredient.Quantity.Add(amount)
	} else {
		ingredient.Quantity = utils.FloorZero(ingredient.Quantity.Sub(amount))
	}
	tx := models.Transaction{
		Id:             utils.NewId(),
		OrganizationId: orgId,
		LocationId:     ingredient.LocationId,
		Date:           s.now(),
		Type:           models.TransactionTypeExpense,
		Category:       category,
		Amount:         amount.Mul(ingredient.CostPerUnit),
		Description:    fmt.Sprintf("%s: %s x%s", label, ingredient.Name, amount.String()),
		EmployeeId:     s.actorId(),
	}

	s.store.Commit(ctx,
		s.store.Inventory.Stage(replace(s.store.Inventory.All(), ingredient)),
		s.store.Transactions.Stage(append(s.store.Transactions.All(), tx)),
	)
	return StockMovement{Ingredient: ingredient, Transaction: tx}, nil
}
