package models

import (
	"strings"
	"time"

	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
)

type Employee struct {
	Id             string          `json:"id"`
	OrganizationId string          `json:"organizationId"`
	LocationId     string          `json:"locationId"`
	Name           string          `json:"name"`
	Role           Role            `json:"role"`
	Pin            string          `json:"pin"`
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	Status         EmployeeStatus  `json:"status"`
	Permissions    []Permission    `json:"permissions"`
	Image          string          `json:"image,omitempty"`
	Email          string          `json:"email,omitempty"`
}

func (e Employee) GetId() string             { return e.Id }
func (e Employee) GetOrganizationId() string { return e.OrganizationId }
func (e Employee) GetLocationId() string     { return e.LocationId }

func (e Employee) HasPermission(p Permission) bool {
	for _, granted := range e.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

type NewEmployee struct {
	Name        string          `json:"name" validate:"required"`
	Role        Role            `json:"role" validate:"required,oneof=admin cashier waiter"`
	Pin         string          `json:"pin" validate:"required,numeric"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	Permissions []Permission    `json:"permissions" validate:"dive,oneof=process_refund void_order apply_discount manage_inventory view_reports"`
	Image       string          `json:"image"`
	Email       string          `json:"email" validate:"omitempty,email"`
	LocationId  string          `json:"locationId"`
}

func (input *NewEmployee) Build(id, organizationId, locationId string) (Employee, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := utils.ValidateStruct(input); err != nil {
		return Employee{}, err
	}
	if input.HourlyRate.IsNegative() {
		return Employee{}, utils.NewValidationError("HourlyRate", "gte")
	}
	if id == "" {
		id = utils.NewId()
	}
	permissions := input.Permissions
	if permissions == nil {
		permissions = []Permission{}
	}
	return Employee{
		Id:             id,
		OrganizationId: organizationId,
		LocationId:     locationId,
		Name:           input.Name,
		Role:           input.Role,
		Pin:            input.Pin,
		HourlyRate:     input.HourlyRate,
		Status:         EmployeeClockedOut,
		Permissions:    permissions,
		Image:          input.Image,
		Email:          input.Email,
	}, nil
}

// Shift is one clock-in period. EndTime and HoursWorked stay nil while the shift is open.
type Shift struct {
	Id             string           `json:"id"`
	OrganizationId string           `json:"organizationId"`
	EmployeeId     string           `json:"employeeId"`
	StartTime      time.Time        `json:"startTime"`
	EndTime        *time.Time       `json:"endTime,omitempty"`
	HoursWorked    *decimal.Decimal `json:"hoursWorked,omitempty"`
}

func (s Shift) GetId() string             { return s.Id }
func (s Shift) GetOrganizationId() string { return s.OrganizationId }

func (s Shift) IsOpen() bool {
	return s.EndTime == nil
}

// Close ends the shift at end and records the hours worked.
func (s Shift) Close(end time.Time) Shift {
	s.EndTime = &end
	hours := HoursBetween(s.StartTime, end)
	s.HoursWorked = &hours
	return s
}

// HoursBetween is end - start in hours.
func HoursBetween(start, end time.Time) decimal.Decimal {
	return decimal.NewFromInt(end.Sub(start).Milliseconds()).Div(decimal.NewFromInt(3600000))
}

type NewShift struct {
	EmployeeId string     `json:"employeeId" validate:"required"`
	StartTime  time.Time  `json:"startTime" validate:"required"`
	EndTime    *time.Time `json:"endTime"`
}

func (input *NewShift) Build(id, organizationId string) (Shift, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return Shift{}, err
	}
	if input.EndTime != nil && input.EndTime.Before(input.StartTime) {
		return Shift{}, utils.NewValidationError("EndTime", "gtefield")
	}
	if id == "" {
		id = utils.NewId()
	}
	shift := Shift{
		Id:             id,
		OrganizationId: organizationId,
		EmployeeId:     input.EmployeeId,
		StartTime:      input.StartTime,
	}
	if input.EndTime != nil {
		shift = shift.Close(*input.EndTime)
	}
	return shift, nil
}
