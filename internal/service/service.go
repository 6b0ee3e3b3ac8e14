package service

import (
	"github.com/fixora/adminapi/internal/config"
	"github.com/fixora/adminapi/internal/handlers/auth"
	"github.com/fixora/adminapi/internal/handlers/catalog"
	"github.com/fixora/adminapi/internal/handlers/directory"
	"github.com/fixora/adminapi/internal/handlers/payouts"
	"github.com/fixora/adminapi/internal/handlers/settings"
	"github.com/fixora/adminapi/internal/sweeper"

	pkgauth "github.com/fixora/adminapi/pkg/auth"

	"github.com/fixora/adminapi/internal/repo"
	authservice "github.com/fixora/adminapi/internal/service/authservice"
	catalogservice "github.com/fixora/adminapi/internal/service/catalogservice"
	directoryservice "github.com/fixora/adminapi/internal/service/directoryservice"
	payoutservice "github.com/fixora/adminapi/internal/service/payoutservice"
	settingsservice "github.com/fixora/adminapi/internal/service/settingsservice"
)

type Services struct {
	AuthService      auth.Service
	CatalogService   catalog.Service
	DirectoryService directory.Service
	PayoutService    payouts.Service
	SettingsService  settings.Service

	// SessionChecker and SessionPurger are the same auth service exposed
	// through narrower interfaces, for the access guard and the sweeper.
	SessionChecker pkgauth.SessionChecker
	SessionPurger  sweeper.SessionPurger
}

func New(repo *repo.Repositories, cfg *config.Config, storage catalogservice.Storage) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret), cfg.SessionTTL)
	catalogService := catalogservice.New(repo.DocumentRepo, repo.BannerRepo, repo.SubcategoryRepo, storage)
	directoryService := directoryservice.New(repo.DirectoryRepo, repo.PayoutCounter)
	payoutService := payoutservice.New(repo.PayoutRepo)
	settingsService := settingsservice.New(repo.SettingsRepo)

	return &Services{
		AuthService:      authService,
		CatalogService:   catalogService,
		DirectoryService: directoryService,
		PayoutService:    payoutService,
		SettingsService:  settingsService,
		SessionChecker:   authService,
		SessionPurger:    authService,
	}
}
