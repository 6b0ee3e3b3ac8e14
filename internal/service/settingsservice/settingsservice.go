package settingsservice

import (
	"context"

	"github.com/fixora/adminapi/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

type Service struct {
	settingsRepo Repo
}

func New(settingsRepo Repo) *Service {
	return &Service{settingsRepo: settingsRepo}
}

// Get returns the stored settings document, or the empty per-group shape
// when nothing has been saved yet.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get settings", zap.Error(err))
		return nil, err
	}
	if settings == nil {
		return domain.EmptySettings(), nil
	}
	return settings, nil
}

// Save replaces the whole document. Partial writes are not supported: the
// caller always submits every group.
func (s *Service) Save(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		zap.L().Error("failed to save settings", zap.Error(err))
		return nil, err
	}
	return saved, nil
}
