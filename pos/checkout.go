package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("smartpos/pos")

// TaxRate is applied on top of the cart subtotal.
var TaxRate = decimal.RequireFromString("0.08")

// AcknowledgeDelay is how long a client shows the success screen after checkout.
const AcknowledgeDelay = 3 * time.Second

type CheckoutInput struct {
	CustomerId  string             `json:"customerId"`
	PaymentKind models.PaymentKind `json:"paymentKind" validate:"omitempty,oneof=cash credit"`
	OrderType   models.OrderType   `json:"orderType" validate:"omitempty,oneof=dine-in take-out delivery"`
	TableId     string             `json:"tableId"`
}

// Consumption is the stock taken from one ingredient by an order.
type Consumption struct {
	IngredientId string          `json:"ingredientId"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Remaining    decimal.Decimal `json:"remaining"`
}

type Receipt struct {
	OrderId          string             `json:"orderId"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	Tax              decimal.Decimal    `json:"tax"`
	Total            decimal.Decimal    `json:"total"`
	Cogs             decimal.Decimal    `json:"cogs"`
	Items            []models.CartItem  `json:"items"`
	Income           models.Transaction `json:"income"`
	CogsTransaction  models.Transaction `json:"cogsTransaction"`
	Consumed         []Consumption      `json:"consumed"`
	Warnings         []string           `json:"warnings"`
	AcknowledgeUntil time.Time          `json:"acknowledgeUntil"`
}

// Checkout settles the cart at the selected location: it books the sale and its cost,
// draws recipe stock, charges credit customers and seats dine-in tables, then empties the cart.
// Nothing changes unless every precondition holds.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := tracer.Start(ctx, "pos.Checkout")
	defer span.End()

	if input.OrderType == "" {
		input.OrderType = models.OrderTypeDineIn
	}
	if input.PaymentKind == "" {
		input.PaymentKind = models.PaymentCash
	}

	ctx, orgId, err := s.scope(ctx)
	if err != nil {
		return Receipt{}, err
	}
	locId := s.session.SelectedLocationId
	if locId == "" || locId == models.AllLocations {
		return Receipt{}, utils.ErrSelectLocationFirst
	}
	if input.OrderType == models.OrderTypeDineIn && input.TableId == "" {
		return Receipt{}, utils.ErrTableRequired
	}
	if len(s.cart) == 0 {
		return Receipt{}, utils.ErrEmptyCart
	}
	for _, item := range s.cart {
		if item.OrganizationId != orgId {
			return Receipt{}, utils.ErrForeignOrganization
		}
	}
	if err := utils.ValidateStruct(&input); err != nil {
		return Receipt{}, err
	}

	var customer models.Customer
	if input.CustomerId != "" {
		if customer, err = store.GetScoped(s.store.Customers, input.CustomerId, orgId); err != nil {
			return Receipt{}, err
		}
	}
	var table models.Table
	if input.TableId != "" {
		if table, err = store.GetScoped(s.store.Tables, input.TableId, orgId); err != nil {
			return Receipt{}, err
		}
	}

	subtotal, cogs := decimal.Zero, decimal.Zero
	for _, item := range s.cart {
		subtotal = subtotal.Add(item.LineTotal())
		cogs = cogs.Add(item.LineCost())
	}
	total := subtotal.Mul(decimal.NewFromInt(1).Add(TaxRate))

	now := s.now()
	orderId := utils.NewId()
	ref := utils.ShortRef(orderId)
	income := models.Transaction{
		Id:             utils.NewId(),
		OrganizationId: orgId,
		LocationId:     locId,
		Date:           now,
		Type:           models.TransactionTypeIncome,
		Category:       models.CategoryFoodSales,
		Amount:         total,
		Description:    fmt.Sprintf("Order #%s", ref),
		CustomerId:     input.CustomerId,
		OrderType:      input.OrderType,
		TableId:        input.TableId,
		EmployeeId:     s.actorId(),
		OrderId:        orderId,
	}
	expense := models.Transaction{
		Id:             utils.NewId(),
		OrganizationId: orgId,
		LocationId:     locId,
		Date:           now,
		Type:           models.TransactionTypeExpense,
		Category:       models.CategoryCostOfGoodsSold,
		Amount:         cogs,
		Description:    fmt.Sprintf("COGS #%s", ref),
		EmployeeId:     s.actorId(),
		OrderId:        orderId,
	}

	inventory, consumed, warnings := s.consume(ctx, orgId, locId)

	changes := []store.Change{
		s.store.Transactions.Stage(append([]models.Transaction{income, expense}, s.store.Transactions.All()...)),
		s.store.Inventory.Stage(inventory),
	}
	if input.PaymentKind == models.PaymentCredit && customer.Id != "" {
		customer.Balance = customer.Balance.Add(total)
		changes = append(changes, s.store.Customers.Stage(replace(s.store.Customers.All(), customer)))
	}
	if input.OrderType == models.OrderTypeDineIn && table.Id != "" {
		table.Status = models.TableOccupied
		changes = append(changes, s.store.Tables.Stage(replace(s.store.Tables.All(), table)))
	}
	s.store.Commit(ctx, changes...)

	items := s.cart
	s.cart = []models.CartItem{}

	span.SetAttributes(
		attribute.String("order_id", orderId),
		attribute.String("location_id", locId),
		attribute.Int("lines", len(items)),
		attribute.String("total", total.String()),
	)
	if len(warnings) > 0 {
		span.AddEvent("unresolved_recipe_items", trace.WithAttributes(attribute.StringSlice("warnings", warnings)))
	}

	return Receipt{
		OrderId:          orderId,
		Subtotal:         subtotal,
		Tax:              total.Sub(subtotal),
		Total:            total,
		Cogs:             cogs,
		Items:            items,
		Income:           income,
		CogsTransaction:  expense,
		Consumed:         consumed,
		Warnings:         warnings,
		AcknowledgeUntil: now.Add(AcknowledgeDelay),
	}, nil
}

// consume draws the cart's recipe stock from the ingredients at locationId and returns the
// resulting inventory. A recipe item resolves to the referenced ingredient when it is held at
// locationId, otherwise to the ingredient there with the same sku.
func (s *Service) consume(ctx context.Context, organizationId, locationId string) ([]models.Ingredient, []Consumption, []string) {
	inventory := s.store.Inventory.All()
	byIngredient := map[string]int{}
	consumed := []Consumption{}
	warnings := []string{}

	for _, item := range s.cart {
		for _, r := range item.Recipe {
			i := resolveIngredient(inventory, r.IngredientId, organizationId, locationId)
			if i < 0 {
				msg := fmt.Sprintf("%s: ingredient %s not stocked at this location", item.Name, r.IngredientId)
				warnings = append(warnings, msg)
				config.LogWarning(s.logger, "pos", "Checkout", msg, utils.LogFieldsFromContext(ctx))
				continue
			}
			amount := r.Quantity.Mul(decimal.NewFromInt(int64(item.Quantity)))
			inventory[i].Quantity = utils.FloorZero(inventory[i].Quantity.Sub(amount))

			if j, ok := byIngredient[inventory[i].Id]; ok {
				consumed[j].Quantity = consumed[j].Quantity.Add(amount)
				consumed[j].Remaining = inventory[i].Quantity
				continue
			}
			byIngredient[inventory[i].Id] = len(consumed)
			consumed = append(consumed, Consumption{
				IngredientId: inventory[i].Id,
				Name:         inventory[i].Name,
				Quantity:     amount,
				Remaining:    inventory[i].Quantity,
			})
		}
	}
	return inventory, consumed, warnings
}

func resolveIngredient(inventory []models.Ingredient, ingredientId, organizationId, locationId string) int {
	sku := ""
	for i, ing := range inventory {
		if ing.Id != ingredientId {
			continue
		}
		if ing.OrganizationId == organizationId && ing.LocationId == locationId {
			return i
		}
		sku = ing.Sku
	}
	if sku == "" {
		return -1
	}
	for i, ing := range inventory {
		if ing.Sku == sku && ing.OrganizationId == organizationId && ing.LocationId == locationId {
			return i
		}
	}
	return -1
}
