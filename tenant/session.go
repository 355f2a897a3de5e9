package tenant

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/utils"
)

// Session is who is acting and which organization/location they are looking at.
type Session struct {
	User *models.User
	// OrganizationOverride is the organization a super admin switched to. Ignored for everyone else.
	OrganizationOverride string
	// SelectedLocationId is a location id or models.AllLocations.
	SelectedLocationId string
}

func NewSession() *Session {
	return &Session{SelectedLocationId: models.AllLocations}
}

func (s *Session) IsSuperAdmin() bool {
	return s.User != nil && s.User.IsSuperAdmin()
}

// EffectiveOrganizationId resolves the organization every read and write is scoped to.
func (s *Session) EffectiveOrganizationId(organizations []models.Organization) string {
	if s.User == nil {
		return ""
	}
	if s.User.IsSuperAdmin() {
		if s.OrganizationOverride != "" {
			return s.OrganizationOverride
		}
		if len(organizations) > 0 {
			return organizations[0].Id
		}
		return ""
	}
	return s.User.OrganizationId
}

// EffectiveLocationId returns the selected location, or the first location of
// organizationId when "all" is selected. Empty when the organization has none.
func (s *Session) EffectiveLocationId(organizationId string, locations []models.Location) string {
	if s.SelectedLocationId != "" && s.SelectedLocationId != models.AllLocations {
		return s.SelectedLocationId
	}
	for _, l := range locations {
		if l.OrganizationId == organizationId {
			return l.Id
		}
	}
	return ""
}

// WriteLocationId is EffectiveLocationId for creating location-scoped records.
// An organization without locations is an error unless ALLOW_UNASSIGNED_LOCATION is set.
func (s *Session) WriteLocationId(organizationId string, locations []models.Location) (string, error) {
	id := s.EffectiveLocationId(organizationId, locations)
	if id == "" && !config.AllowUnassignedLocation() {
		return "", utils.ErrNoLocationAvailable
	}
	return id, nil
}

// SelectOrganization switches a super admin to organizationId and resets the location selection.
func (s *Session) SelectOrganization(organizationId string) error {
	if !s.IsSuperAdmin() {
		return utils.ErrSuperAdminOnly
	}
	s.OrganizationOverride = organizationId
	s.SelectedLocationId = models.AllLocations
	return nil
}

func (s *Session) SelectLocation(locationId string) {
	if locationId == "" {
		locationId = models.AllLocations
	}
	s.SelectedLocationId = locationId
}

func (s *Session) Reset() {
	s.User = nil
	s.OrganizationOverride = ""
	s.SelectedLocationId = models.AllLocations
}

// WithContext stamps the resolved identifiers on ctx for logging.
func (s *Session) WithContext(ctx context.Context, organizationId string) context.Context {
	if s.User != nil {
		ctx = utils.SetUserIdInContext(ctx, s.User.Id)
		ctx = utils.SetIsSuperAdminInContext(ctx, s.User.IsSuperAdmin())
	}
	ctx = utils.SetOrganizationIdInContext(ctx, organizationId)
	return utils.SetLocationIdInContext(ctx, s.SelectedLocationId)
}
