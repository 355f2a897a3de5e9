package models

// Resource is anything stored in a collection keyed by id.
type Resource interface {
	GetId() string
}

// OrganizationResource belongs to exactly one organization.
type OrganizationResource interface {
	Resource
	GetOrganizationId() string
}

// LocationResource belongs to one location of an organization.
type LocationResource interface {
	OrganizationResource
	GetLocationId() string
}
