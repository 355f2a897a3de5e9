package pos

import (
	"context"
	"strings"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/utils"
)

// Login signs in the user registered under email, dropping any previous session and cart.
// There is no password check.
func (s *Service) Login(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	user, ok := s.store.Users.Find(func(u models.User) bool {
		return strings.ToLower(u.Email) == email
	})
	if !ok {
		return models.User{}, utils.ErrUserNotFound
	}

	s.session.Reset()
	s.session.User = &user
	s.cart = []models.CartItem{}
	if user.IsSuperAdmin() {
		if orgs := s.store.Organizations.All(); len(orgs) > 0 {
			s.session.OrganizationOverride = orgs[0].Id
		}
	}
	s.persistSession(ctx)
	return user, nil
}

// Register creates a free-plan organization with the caller as its admin, then signs them in.
func (s *Service) Register(ctx context.Context, input *models.NewRegistration) (models.User, models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	org, user, err := input.Build(s.now())
	if err != nil {
		return models.User{}, models.Organization{}, err
	}
	if _, exists := s.store.Users.Find(func(u models.User) bool {
		return strings.EqualFold(u.Email, user.Email)
	}); exists {
		return models.User{}, models.Organization{}, utils.ErrEmailAlreadyUsed
	}

	s.store.Commit(ctx,
		s.store.Organizations.Stage(append(s.store.Organizations.All(), org)),
		s.store.Users.Stage(append(s.store.Users.All(), user)),
	)

	s.session.Reset()
	s.session.User = &user
	s.cart = []models.CartItem{}
	s.persistSession(ctx)
	return user, org, nil
}

// Logout clears the user, the organization selection and the cart.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Reset()
	s.cart = []models.CartItem{}
	s.store.SetSession(ctx, nil, "")
}

// SelectOrganization switches a super admin's view to organizationId. Switching to another
// organization empties the cart.
func (s *Service) SelectOrganization(ctx context.Context, organizationId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return utils.ErrNotLoggedIn
	}
	if _, ok := s.store.Organizations.Get(organizationId); !ok {
		return utils.ErrorRecordNotFound
	}
	previous := s.session.EffectiveOrganizationId(s.store.Organizations.All())
	if err := s.session.SelectOrganization(organizationId); err != nil {
		return err
	}
	if previous != organizationId {
		s.cart = []models.CartItem{}
	}
	s.persistSession(ctx)
	return nil
}

// SelectLocation narrows the view to locationId, or to every location with models.AllLocations.
func (s *Service) SelectLocation(ctx context.Context, locationId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return err
	}
	if locationId != "" && locationId != models.AllLocations {
		if _, err := store.GetScoped(s.store.Locations, locationId, orgId); err != nil {
			return err
		}
	}
	s.session.SelectLocation(locationId)
	return nil
}

// Organizations lists every organization for a super admin, otherwise only the user's own.
func (s *Service) Organizations(ctx context.Context) ([]models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, orgId, err := s.scope(ctx)
	if err != nil {
		return nil, err
	}
	if s.session.IsSuperAdmin() {
		return s.store.Organizations.All(), nil
	}
	if org, ok := s.store.Organizations.Get(orgId); ok {
		return []models.Organization{org}, nil
	}
	return []models.Organization{}, nil
}

func (s *Service) persistSession(ctx context.Context) {
	s.store.SetSession(ctx, s.session.User, s.session.OrganizationOverride)
}
