package repo

import (
	"github.com/fixora/adminapi/internal/pg"
	bannerrepo "github.com/fixora/adminapi/internal/repo/banner-repo"
	directoryrepo "github.com/fixora/adminapi/internal/repo/directory-repo"
	documentrepo "github.com/fixora/adminapi/internal/repo/document-repo"
	payoutrepo "github.com/fixora/adminapi/internal/repo/payout-repo"
	settingsrepo "github.com/fixora/adminapi/internal/repo/settings-repo"
	subcategoryrepo "github.com/fixora/adminapi/internal/repo/subcategory-repo"
	userrepo "github.com/fixora/adminapi/internal/repo/user-repo"
	"github.com/fixora/adminapi/internal/service/authservice"
	"github.com/fixora/adminapi/internal/service/catalogservice"
	"github.com/fixora/adminapi/internal/service/directoryservice"
	"github.com/fixora/adminapi/internal/service/payoutservice"
	"github.com/fixora/adminapi/internal/service/settingsservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	DocumentRepo    catalogservice.DocumentRepo
	BannerRepo      catalogservice.BannerRepo
	SubcategoryRepo catalogservice.SubcategoryRepo
	DirectoryRepo   directoryservice.Repo
	PayoutRepo      payoutservice.Repo
	PayoutCounter   directoryservice.PayoutCounter
	SettingsRepo    settingsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	documentRepo := documentrepo.New(conn)
	bannerRepo := bannerrepo.New(conn)
	subcategoryRepo := subcategoryrepo.New(conn)
	directoryRepo := directoryrepo.New(conn)
	payoutRepo := payoutrepo.New(conn, txManager)
	settingsRepo := settingsrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		DocumentRepo:    documentRepo,
		BannerRepo:      bannerRepo,
		SubcategoryRepo: subcategoryRepo,
		DirectoryRepo:   directoryRepo,
		PayoutRepo:      payoutRepo,
		PayoutCounter:   payoutRepo,
		SettingsRepo:    settingsRepo,
	}
}
