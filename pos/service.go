package pos

import (
	"context"
	"sync"
	"time"

	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/store"
	"github.com/mmdatafocus/smartpos_backend/tenant"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/sirupsen/logrus"
)

// Service is the only writer to the store. Every exported method takes the
// service lock, so operations apply one at a time in arrival order.
type Service struct {
	mu      sync.Mutex
	store   *store.Store
	session *tenant.Session
	cart    []models.CartItem
	logger  *logrus.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService restores the persisted session (user and organization selection) from st.
func NewService(st *store.Store, logger *logrus.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = config.GetLogger()
	}
	s := &Service{
		store:   st,
		session: tenant.NewSession(),
		cart:    []models.CartItem{},
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if u := st.CurrentUser(); u != nil {
		s.session.User = u
		if u.IsSuperAdmin() {
			s.session.OrganizationOverride = st.CurrentOrganization()
		}
	}
	return s
}

// SessionInfo describes the resolved tenant context.
type SessionInfo struct {
	User               *models.User         `json:"user"`
	Organization       *models.Organization `json:"organization"`
	SelectedLocationId string               `json:"selectedLocationId"`
	LocationId         string               `json:"locationId"`
	Settings           models.AppSettings   `json:"settings"`
}

func (s *Service) Session(ctx context.Context) SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	orgId := s.organizationId()
	info := SessionInfo{
		SelectedLocationId: s.session.SelectedLocationId,
		LocationId:         s.session.EffectiveLocationId(orgId, s.store.Locations.All()),
		Settings:           s.store.Settings(),
	}
	if s.session.User != nil {
		u := *s.session.User
		info.User = &u
	}
	if org, ok := s.store.Organizations.Get(orgId); ok {
		info.Organization = &org
	}
	return info
}

func (s *Service) organizationId() string {
	return s.session.EffectiveOrganizationId(s.store.Organizations.All())
}

// scope resolves the organization of the logged-in user and stamps it on ctx.
func (s *Service) scope(ctx context.Context) (context.Context, string, error) {
	if s.session.User == nil {
		return ctx, "", utils.ErrNotLoggedIn
	}
	orgId := s.organizationId()
	if orgId == "" {
		return ctx, "", utils.ErrNoOrganization
	}
	return s.session.WithContext(ctx, orgId), orgId, nil
}

// writeLocation picks the location stamped on a new location-scoped record:
// requested when it belongs to the organization, otherwise the session's effective location.
func (s *Service) writeLocation(organizationId, requested string) (string, error) {
	if requested != "" {
		if _, err := store.GetScoped(s.store.Locations, requested, organizationId); err != nil {
			return "", err
		}
		return requested, nil
	}
	return s.session.WriteLocationId(organizationId, s.store.Locations.All())
}

func (s *Service) actorId() string {
	if s.session.User == nil {
		return ""
	}
	return s.session.User.Id
}

func (s *Service) requireSuperAdmin() error {
	if s.session.User == nil {
		return utils.ErrNotLoggedIn
	}
	if !s.session.IsSuperAdmin() {
		return utils.ErrSuperAdminOnly
	}
	return nil
}
