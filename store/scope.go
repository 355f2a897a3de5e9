package store

import (
	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/utils"
)

// ForOrganization returns the records owned by organizationId, in collection order.
func ForOrganization[T models.OrganizationResource](items []T, organizationId string) []T {
	out := []T{}
	for _, item := range items {
		if item.GetOrganizationId() == organizationId {
			out = append(out, item)
		}
	}
	return out
}

// ForLocation narrows ForOrganization to locationId. models.AllLocations keeps the whole organization.
func ForLocation[T models.LocationResource](items []T, organizationId, locationId string) []T {
	if locationId == models.AllLocations {
		return ForOrganization(items, organizationId)
	}
	out := []T{}
	for _, item := range items {
		if item.GetOrganizationId() == organizationId && item.GetLocationId() == locationId {
			out = append(out, item)
		}
	}
	return out
}

// GetScoped fetches id from c and rejects records of another organization.
func GetScoped[T models.OrganizationResource](c *Collection[T], id, organizationId string) (T, error) {
	var zero T
	item, ok := c.Get(id)
	if !ok {
		return zero, utils.ErrorRecordNotFound
	}
	if item.GetOrganizationId() != organizationId {
		return zero, utils.ErrForeignOrganization
	}
	return item, nil
}
