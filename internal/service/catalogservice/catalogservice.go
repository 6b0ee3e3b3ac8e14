package catalogservice

import (
	"context"
	"io"
	"path"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentRepo interface {
	FindAll(ctx context.Context) ([]domain.Document, error)
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
}

type BannerRepo interface {
	FindAll(ctx context.Context) ([]domain.Banner, error)
	Create(ctx context.Context, banner *domain.Banner) (*domain.Banner, error)
	Update(ctx context.Context, banner *domain.Banner) (*domain.Banner, error)
	Delete(ctx context.Context, id string) error
}

type SubcategoryRepo interface {
	FindAllCategories(ctx context.Context) ([]domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Subcategory, error)
	Create(ctx context.Context, sc *domain.Subcategory) (*domain.Subcategory, error)
	Update(ctx context.Context, sc *domain.Subcategory) (*domain.Subcategory, error)
	Delete(ctx context.Context, id string) error
}

// Storage is the object-storage collaborator banner images are pushed to.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type Service struct {
	documentRepo    DocumentRepo
	bannerRepo      BannerRepo
	subcategoryRepo SubcategoryRepo
	storage         Storage

	documents     *store.Store[domain.Document]
	banners       *store.Store[domain.Banner]
	subcategories *store.Store[domain.Subcategory]
}

func New(documentRepo DocumentRepo, bannerRepo BannerRepo, subcategoryRepo SubcategoryRepo, storage Storage) *Service {
	return &Service{
		documentRepo:    documentRepo,
		bannerRepo:      bannerRepo,
		subcategoryRepo: subcategoryRepo,
		storage:         storage,
		documents: store.New("documents",
			func(d domain.Document) string { return d.ID }, documentRepo.FindAll),
		banners: store.New("banners",
			func(b domain.Banner) string { return b.ID }, bannerRepo.FindAll),
		subcategories: store.New("subcategories",
			func(sc domain.Subcategory) string { return sc.ID }, subcategoryRepo.FindAll),
	}
}

func (s *Service) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documents.FetchAll(ctx)
}

func (s *Service) CreateDocument(ctx context.Context, name string, active bool) (*domain.Document, error) {
	return s.documents.Create(ctx, func(ctx context.Context) (*domain.Document, error) {
		return s.documentRepo.Create(ctx, &domain.Document{
			ID:     uuid.NewString(),
			Name:   name,
			Active: active,
		})
	})
}

func (s *Service) UpdateDocument(ctx context.Context, id, name string, active bool) (*domain.Document, error) {
	return s.documents.Mutate(ctx, id, func(ctx context.Context) (*domain.Document, error) {
		return s.documentRepo.Update(ctx, &domain.Document{
			ID:     id,
			Name:   name,
			Active: active,
		})
	})
}

func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	return s.documents.Delete(ctx, id, func(ctx context.Context) error {
		return s.documentRepo.Delete(ctx, id)
	})
}

func (s *Service) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.banners.FetchAll(ctx)
}

// UploadBannerImage stores the blob under a fresh key and returns its
// durable public URL. The banner row itself is written separately.
func (s *Service) UploadBannerImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := "banners/" + uuid.NewString() + path.Ext(filename)
	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		zap.L().Error("failed to upload banner image", zap.Error(err))
		return "", err
	}
	return url, nil
}

func (s *Service) CreateBanner(ctx context.Context, name, imageURL string) (*domain.Banner, error) {
	return s.banners.Create(ctx, func(ctx context.Context) (*domain.Banner, error) {
		return s.bannerRepo.Create(ctx, &domain.Banner{
			ID:       uuid.NewString(),
			Name:     name,
			ImageURL: imageURL,
		})
	})
}

func (s *Service) UpdateBanner(ctx context.Context, id, name, imageURL string) (*domain.Banner, error) {
	return s.banners.Mutate(ctx, id, func(ctx context.Context) (*domain.Banner, error) {
		return s.bannerRepo.Update(ctx, &domain.Banner{
			ID:       id,
			Name:     name,
			ImageURL: imageURL,
		})
	})
}

func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	return s.banners.Delete(ctx, id, func(ctx context.Context) error {
		return s.bannerRepo.Delete(ctx, id)
	})
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.subcategoryRepo.FindAllCategories(ctx)
	if err != nil {
		zap.L().Error("failed to get categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (s *Service) ListSubcategories(ctx context.Context) ([]domain.Subcategory, error) {
	return s.subcategories.FetchAll(ctx)
}

func (s *Service) CreateSubcategory(ctx context.Context, name, categoryID string) (*domain.Subcategory, error) {
	return s.subcategories.Create(ctx, func(ctx context.Context) (*domain.Subcategory, error) {
		return s.subcategoryRepo.Create(ctx, &domain.Subcategory{
			ID:         uuid.NewString(),
			Name:       name,
			CategoryID: categoryID,
		})
	})
}

func (s *Service) UpdateSubcategory(ctx context.Context, id, name, categoryID string) (*domain.Subcategory, error) {
	return s.subcategories.Mutate(ctx, id, func(ctx context.Context) (*domain.Subcategory, error) {
		return s.subcategoryRepo.Update(ctx, &domain.Subcategory{
			ID:         id,
			Name:       name,
			CategoryID: categoryID,
		})
	})
}

func (s *Service) DeleteSubcategory(ctx context.Context, id string) error {
	return s.subcategories.Delete(ctx, id, func(ctx context.Context) error {
		return s.subcategoryRepo.Delete(ctx, id)
	})
}
