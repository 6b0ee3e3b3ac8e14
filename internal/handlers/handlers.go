package handlers

import (
	"net/http"

	_ "github.com/fixora/adminapi/docs"
	"github.com/fixora/adminapi/internal/config"
	authhandlers "github.com/fixora/adminapi/internal/handlers/auth"
	cataloghandlers "github.com/fixora/adminapi/internal/handlers/catalog"
	directoryhandlers "github.com/fixora/adminapi/internal/handlers/directory"
	payoutshandlers "github.com/fixora/adminapi/internal/handlers/payouts"
	settingshandlers "github.com/fixora/adminapi/internal/handlers/settings"
	"github.com/fixora/adminapi/internal/service"
	pkgauth "github.com/fixora/adminapi/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginPage(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetDocuments(w http.ResponseWriter, r *http.Request)
	CreateDocument(w http.ResponseWriter, r *http.Request)
	UpdateDocument(w http.ResponseWriter, r *http.Request)
	DeleteDocument(w http.ResponseWriter, r *http.Request)
	GetBanners(w http.ResponseWriter, r *http.Request)
	UploadBannerImage(w http.ResponseWriter, r *http.Request)
	CreateBanner(w http.ResponseWriter, r *http.Request)
	UpdateBanner(w http.ResponseWriter, r *http.Request)
	DeleteBanner(w http.ResponseWriter, r *http.Request)
	GetCategories(w http.ResponseWriter, r *http.Request)
	GetSubcategories(w http.ResponseWriter, r *http.Request)
	CreateSubcategory(w http.ResponseWriter, r *http.Request)
	UpdateSubcategory(w http.ResponseWriter, r *http.Request)
	DeleteSubcategory(w http.ResponseWriter, r *http.Request)
}

type DirectoryHandler interface {
	GetProviders(w http.ResponseWriter, r *http.Request)
	GetCustomers(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type PayoutsHandler interface {
	GetPayouts(w http.ResponseWriter, r *http.Request)
	CreatePayout(w http.ResponseWriter, r *http.Request)
	ApprovePayout(w http.ResponseWriter, r *http.Request)
	RejectPayout(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	SaveSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	CatalogHandler   CatalogHandler
	DirectoryHandler DirectoryHandler
	PayoutsHandler   PayoutsHandler
	SettingsHandler  SettingsHandler

	guard *pkgauth.Guard
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	guard := pkgauth.NewGuard(s.SessionChecker, pkgauth.GuardConfig{
		AllowedEmail: cfg.AdminEmail,
		LoginPath:    cfg.LoginPath,
		RetryDelay:   cfg.GuardRetryDelay,
		CheckTimeout: cfg.GuardCheckTimeout,
	})
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService, cfg.DashboardPath),
		CatalogHandler:   cataloghandlers.New(s.CatalogService),
		DirectoryHandler: directoryhandlers.New(s.DirectoryService),
		PayoutsHandler:   payoutshandlers.New(s.PayoutService),
		SettingsHandler:  settingshandlers.New(s.SettingsService),
		guard:            guard,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/login", h.AuthHandler.LoginPage)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/logout", h.AuthHandler.Logout)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.guard.Middleware)

			r.Get("/stats", h.DirectoryHandler.GetStats)
			r.Get("/providers", h.DirectoryHandler.GetProviders)
			r.Get("/customers", h.DirectoryHandler.GetCustomers)

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.CatalogHandler.GetDocuments)
				r.Post("/", h.CatalogHandler.CreateDocument)
				r.Put("/{id}", h.CatalogHandler.UpdateDocument)
				r.Delete("/{id}", h.CatalogHandler.DeleteDocument)
			})
			r.Route("/banners", func(r chi.Router) {
				r.Get("/", h.CatalogHandler.GetBanners)
				r.Post("/", h.CatalogHandler.CreateBanner)
				r.Post("/image", h.CatalogHandler.UploadBannerImage)
				r.Put("/{id}", h.CatalogHandler.UpdateBanner)
				r.Delete("/{id}", h.CatalogHandler.DeleteBanner)
			})
			r.Get("/categories", h.CatalogHandler.GetCategories)
			r.Route("/subcategories", func(r chi.Router) {
				r.Get("/", h.CatalogHandler.GetSubcategories)
				r.Post("/", h.CatalogHandler.CreateSubcategory)
				r.Put("/{id}", h.CatalogHandler.UpdateSubcategory)
				r.Delete("/{id}", h.CatalogHandler.DeleteSubcategory)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Get("/", h.PayoutsHandler.GetPayouts)
				r.Post("/", h.PayoutsHandler.CreatePayout)
				r.Post("/{id}/approve", h.PayoutsHandler.ApprovePayout)
				r.Post("/{id}/reject", h.PayoutsHandler.RejectPayout)
			})
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.SettingsHandler.GetSettings)
				r.Put("/", h.SettingsHandler.SaveSettings)
			})
		})
	})

	return r
}
