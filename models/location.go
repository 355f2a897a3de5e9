package models

import (
	"strings"

	"github.com/mmdatafocus/smartpos_backend/utils"
)

// AllLocations is the location selector meaning every location of the organization.
const AllLocations = "all"

type Location struct {
	Id             string         `json:"id"`
	OrganizationId string         `json:"organizationId"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Phone          string         `json:"phone"`
	Type           LocationType   `json:"type"`
	Status         LocationStatus `json:"status"`
}

func (l Location) GetId() string             { return l.Id }
func (l Location) GetOrganizationId() string { return l.OrganizationId }

type NewLocation struct {
	Name    string         `json:"name" validate:"required"`
	Address string         `json:"address"`
	Phone   string         `json:"phone"`
	Type    LocationType   `json:"type" validate:"required,oneof=HQ Branch Pop-up"`
	Status  LocationStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (input *NewLocation) Build(id, organizationId string) (Location, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := utils.ValidateStruct(input); err != nil {
		return Location{}, err
	}
	status := input.Status
	if status == "" {
		status = LocationActive
	}
	if id == "" {
		id = utils.NewId()
	}
	return Location{
		Id:             id,
		OrganizationId: organizationId,
		Name:           input.Name,
		Address:        strings.TrimSpace(input.Address),
		Phone:          utils.NormalizePhoneNumber(input.Phone),
		Type:           input.Type,
		Status:         status,
	}, nil
}
