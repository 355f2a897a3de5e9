package models

import (
	"strings"

	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

// Customer.Balance is what the customer owes on credit; cash sales never touch it.
type Customer struct {
	Id             string          `json:"id"`
	OrganizationId string          `json:"organizationId"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Balance        decimal.Decimal `json:"balance"`
	Image          string          `json:"image"`
}

func (c Customer) GetId() string             { return c.Id }
func (c Customer) GetOrganizationId() string { return c.OrganizationId }

type NewCustomer struct {
	Name    string          `json:"name" validate:"required"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Phone   string          `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
	Image   string          `json:"image"`
}

func (input *NewCustomer) Build(id string, organizationId string) (Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := utils.ValidateStruct(input); err != nil {
		return Customer{}, err
	}
	if id == "" {
		id = utils.NewId()
	}
	return Customer{
		Id:             id,
		OrganizationId: organizationId,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          utils.NormalizePhoneNumber(input.Phone),
		Balance:        input.Balance,
		Image:          input.Image,
	}, nil
}
