package catalogservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockDocumentRepo, *MockBannerRepo, *MockSubcategoryRepo, *MockStorage) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	documentRepo := NewMockDocumentRepo(ctrl)
	bannerRepo := NewMockBannerRepo(ctrl)
	subcategoryRepo := NewMockSubcategoryRepo(ctrl)
	storage := NewMockStorage(ctrl)
	service := New(documentRepo, bannerRepo, subcategoryRepo, storage)
	return service, documentRepo, bannerRepo, subcategoryRepo, storage
}

func TestListDocuments(t *testing.T) {
	service, documentRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	docs := []domain.Document{
		{ID: "d1", Name: "Passport", Active: true},
		{ID: "d2", Name: "Driver licence", Active: false},
	}
	documentRepo.EXPECT().FindAll(gomock.Any()).Return(docs, nil)

	got, err := service.ListDocuments(ctx)
	assert.NoError(t, err)
	assert.Equal(t, docs, got)
}

func TestCreateDocument(t *testing.T) {
	tests := []struct {
		name     string
		docName  string
		repoErr  error
		wantErr  bool
	}{
		{name: "Success", docName: "Passport"},
		{name: "RepoError", docName: "Passport", repoErr: errors.New("insert failed"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, documentRepo, _, _, _ := NewMock(t)
			ctx := context.Background()

			documentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, doc *domain.Document) (*domain.Document, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					assert.NotEmpty(t, doc.ID)
					assert.Equal(t, tt.docName, doc.Name)
					assert.True(t, doc.Active)
					return doc, nil
				})

			doc, err := service.CreateDocument(ctx, tt.docName, true)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.docName, doc.Name)
			}
		})
	}
}

func TestUpdateDocument(t *testing.T) {
	service, documentRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	documentRepo.EXPECT().Update(gomock.Any(), &domain.Document{ID: "d1", Name: "Renamed", Active: false}).
		Return(&domain.Document{ID: "d1", Name: "Renamed", Active: false}, nil)

	doc, err := service.UpdateDocument(ctx, "d1", "Renamed", false)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", doc.Name)
}

func TestDeleteDocument(t *testing.T) {
	service, documentRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	documentRepo.EXPECT().Delete(gomock.Any(), "d1").Return(nil)
	assert.NoError(t, service.DeleteDocument(ctx, "d1"))
}

func TestUploadBannerImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		upErr    error
		wantErr  bool
	}{
		{name: "Success", filename: "hero.png"},
		{name: "StorageError", filename: "hero.png", upErr: errors.New("bucket unavailable"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _, storage := NewMock(t)
			ctx := context.Background()
			body := strings.NewReader("image-bytes")

			storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", body).DoAndReturn(
				func(_ context.Context, key, _ string, _ any) (string, error) {
					assert.True(t, strings.HasPrefix(key, "banners/"))
					assert.True(t, strings.HasSuffix(key, ".png"))
					if tt.upErr != nil {
						return "", tt.upErr
					}
					return "https://cdn.example.com/" + key, nil
				})

			url, err := service.UploadBannerImage(ctx, tt.filename, "image/png", body)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, url)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, url, "banners/")
			}
		})
	}
}

func TestCreateBanner(t *testing.T) {
	service, _, bannerRepo, _, _ := NewMock(t)
	ctx := context.Background()

	bannerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b *domain.Banner) (*domain.Banner, error) {
			assert.NotEmpty(t, b.ID)
			return b, nil
		})

	banner, err := service.CreateBanner(ctx, "Spring promo", "https://cdn.example.com/banners/x.png")
	assert.NoError(t, err)
	assert.Equal(t, "Spring promo", banner.Name)
}

func TestDeleteBanner(t *testing.T) {
	service, _, bannerRepo, _, _ := NewMock(t)
	ctx := context.Background()

	bannerRepo.EXPECT().Delete(gomock.Any(), "b1").Return(errors.New("delete failed"))
	assert.Error(t, service.DeleteBanner(ctx, "b1"))
}

func TestListCategories(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "Success"},
		{name: "RepoError", repoErr: errors.New("query failed"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, subcategoryRepo, _ := NewMock(t)
			ctx := context.Background()

			categories := []domain.Category{{ID: "c1", Name: "Cleaning"}}
			if tt.repoErr != nil {
				subcategoryRepo.EXPECT().FindAllCategories(gomock.Any()).Return(nil, tt.repoErr)
			} else {
				subcategoryRepo.EXPECT().FindAllCategories(gomock.Any()).Return(categories, nil)
			}

			got, err := service.ListCategories(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, categories, got)
			}
		})
	}
}

func TestSubcategoryLifecycle(t *testing.T) {
	service, _, _, subcategoryRepo, _ := NewMock(t)
	ctx := context.Background()

	subcategoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sc *domain.Subcategory) (*domain.Subcategory, error) {
			assert.NotEmpty(t, sc.ID)
			return sc, nil
		})
	created, err := service.CreateSubcategory(ctx, "Deep cleaning", "c1")
	assert.NoError(t, err)
	assert.Equal(t, "c1", created.CategoryID)

	subcategoryRepo.EXPECT().Update(gomock.Any(), &domain.Subcategory{ID: created.ID, Name: "Move-out cleaning", CategoryID: "c1"}).
		Return(&domain.Subcategory{ID: created.ID, Name: "Move-out cleaning", CategoryID: "c1"}, nil)
	updated, err := service.UpdateSubcategory(ctx, created.ID, "Move-out cleaning", "c1")
	assert.NoError(t, err)
	assert.Equal(t, "Move-out cleaning", updated.Name)

	subcategoryRepo.EXPECT().Delete(gomock.Any(), created.ID).Return(nil)
	assert.NoError(t, service.DeleteSubcategory(ctx, created.ID))
}
