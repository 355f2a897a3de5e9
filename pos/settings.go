package pos

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/models"
)

func (s *Service) Settings(ctx context.Context) models.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Settings()
}

func (s *Service) UpdateSettings(ctx context.Context, settings models.AppSettings) (models.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := settings.Validate(); err != nil {
		return models.AppSettings{}, err
	}
	s.store.SetSettings(ctx, settings)
	return settings, nil
}
