package models

import (
	"strings"
	"time"

	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

// Transaction is one ledger line. Amount is never negative; Type carries the sign.
type Transaction struct {
	Id             string          `json:"id"`
	OrganizationId string          `json:"organizationId"`
	LocationId     string          `json:"locationId"`
	Date           time.Time       `json:"date"`
	Type           TransactionType `json:"type"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	CustomerId     string          `json:"customerId,omitempty"`
	OrderType      OrderType       `json:"orderType,omitempty"`
	TableId        string          `json:"tableId,omitempty"`
	EmployeeId     string          `json:"employeeId,omitempty"`
	OrderId        string          `json:"orderId,omitempty"`
}

func (t Transaction) GetId() string             { return t.Id }
func (t Transaction) GetOrganizationId() string { return t.OrganizationId }
func (t Transaction) GetLocationId() string     { return t.LocationId }

type NewTransaction struct {
	Type        TransactionType `json:"type" validate:"required,oneof=income expense"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
	Date        *time.Time      `json:"date"`
	CustomerId  string          `json:"customerId"`
}

func (input *NewTransaction) Build(organizationId, locationId, employeeId string, now time.Time) (Transaction, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	if err := utils.ValidateStruct(input); err != nil {
		return Transaction{}, err
	}
	if input.Amount.IsNegative() {
		return Transaction{}, utils.NewValidationError("Amount", "gte")
	}
	if input.Category == "" {
		input.Category = CategoryOther
	}
	date := now
	if input.Date != nil {
		date = *input.Date
	}
	return Transaction{
		Id:             utils.NewId(),
		OrganizationId: organizationId,
		LocationId:     locationId,
		Date:           date,
		Type:           input.Type,
		Category:       input.Category,
		Amount:         input.Amount,
		Description:    input.Description,
		CustomerId:     input.CustomerId,
		EmployeeId:     employeeId,
	}, nil
}
