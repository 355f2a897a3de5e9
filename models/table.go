package models

import (
	"strings"

	"github.com/mmdatafocus/smartpos_backend/utils"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableDirty     TableStatus = "dirty"
)

// tableCycle is the floor-plan tap cycle: seat guests, clear, clean.
var tableCycle = map[TableStatus]TableStatus{
	TableAvailable: TableOccupied,
	TableOccupied:  TableDirty,
	TableDirty:     TableAvailable,
	TableReserved:  TableOccupied,
}

// NextTableStatus returns the status a table moves to when its cycle advances.
func NextTableStatus(status TableStatus) (TableStatus, bool) {
	next, ok := tableCycle[status]
	return next, ok
}

func (s TableStatus) IsValid() bool {
	_, ok := tableCycle[s]
	return ok
}

type Table struct {
	Id             string      `json:"id"`
	OrganizationId string      `json:"organizationId"`
	LocationId     string      `json:"locationId"`
	Name           string      `json:"name"`
	Seats          int         `json:"seats"`
	Status         TableStatus `json:"status"`
}

func (t Table) GetId() string             { return t.Id }
func (t Table) GetOrganizationId() string { return t.OrganizationId }
func (t Table) GetLocationId() string     { return t.LocationId }

type NewTable struct {
	Name       string      `json:"name" validate:"required"`
	Seats      int         `json:"seats" validate:"gte=1"`
	Status     TableStatus `json:"status" validate:"omitempty,oneof=available occupied reserved dirty"`
	LocationId string      `json:"locationId"`
}

func (input *NewTable) Build(id, organizationId, locationId string) (Table, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := utils.ValidateStruct(input); err != nil {
		return Table{}, err
	}
	status := input.Status
	if status == "" {
		status = TableAvailable
	}
	if id == "" {
		id = utils.NewId()
	}
	return Table{
		Id:             id,
		OrganizationId: organizationId,
		LocationId:     locationId,
		Name:           input.Name,
		Seats:          input.Seats,
		Status:         status,
	}, nil
}
