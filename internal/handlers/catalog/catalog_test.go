package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/dto"
	"github.com/fixora/adminapi/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CatalogHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetDocuments(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Success",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListDocuments(gomock.Any()).Return([]domain.Document{
					{ID: "d1", Name: "Passport", Active: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "ServiceError",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListDocuments(gomock.Any()).Return(nil, errors.New("query failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/documents", nil)
			w := httptest.NewRecorder()
			handler.GetDocuments(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateDocument(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"name":"Passport","active":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateDocument(gomock.Any(), "Passport", true).
					Return(&domain.Document{ID: "d1", Name: "Passport", Active: true}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "EmptyName",
			body:         `{"name":"","active":true}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "WhitespaceOnlyName",
			body:         `{"name":"   ","active":true}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "InvalidBody",
			body:         `{invalid`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/documents", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateDocument(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateDocument(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{name: "Success", expectedCode: http.StatusOK},
		{name: "NotFound", serviceErr: pgx.ErrNoRows, expectedCode: http.StatusNotFound},
		{name: "EditInFlight", serviceErr: store.ErrMutationInFlight, expectedCode: http.StatusConflict},
		{name: "ServiceError", serviceErr: errors.New("update failed"), expectedCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)

			if tt.serviceErr != nil {
				service.EXPECT().UpdateDocument(gomock.Any(), "d1", "Passport", false).Return(nil, tt.serviceErr)
			} else {
				service.EXPECT().UpdateDocument(gomock.Any(), "d1", "Passport", false).
					Return(&domain.Document{ID: "d1", Name: "Passport"}, nil)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/admin/documents/d1",
				bytes.NewBufferString(`{"name":"Passport","active":false}`))
			req = withURLParam(req, "id", "d1")
			w := httptest.NewRecorder()
			handler.UpdateDocument(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteDocument(t *testing.T) {
	t.Run("RequiresConfirmation", func(t *testing.T) {
		handler, _ := NewMock(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/documents/d1", nil)
		req = withURLParam(req, "id", "d1")
		w := httptest.NewRecorder()
		handler.DeleteDocument(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Confirmed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().DeleteDocument(gomock.Any(), "d1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/documents/d1?confirm=true", nil)
		req = withURLParam(req, "id", "d1")
		w := httptest.NewRecorder()
		handler.DeleteDocument(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().DeleteDocument(gomock.Any(), "d1").Return(pgx.ErrNoRows)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/documents/d1?confirm=true", nil)
		req = withURLParam(req, "id", "d1")
		w := httptest.NewRecorder()
		handler.DeleteDocument(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUploadBannerImage(t *testing.T) {
	newUpload := func(t *testing.T, fieldName, filename, contentType string) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())
		return body, writer.FormDataContentType()
	}

	t.Run("Success", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().UploadBannerImage(gomock.Any(), "hero.png", "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body io.Reader) (string, error) {
				data, err := io.ReadAll(body)
				assert.NoError(t, err)
				assert.Equal(t, "image-bytes", string(data))
				return "https://cdn.example.com/banners/x.png", nil
			})

		body, contentType := newUpload(t, "image", "hero.png", "image/png")
		req := httptest.NewRequest(http.MethodPost, "/api/admin/banners/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.UploadBannerImage(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.UploadImageResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "https://cdn.example.com/banners/x.png", resp.URL)
	})

	t.Run("NotAnImage", func(t *testing.T) {
		handler, _ := NewMock(t)

		body, contentType := newUpload(t, "image", "notes.txt", "text/plain")
		req := httptest.NewRequest(http.MethodPost, "/api/admin/banners/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.UploadBannerImage(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingFilePart", func(t *testing.T) {
		handler, _ := NewMock(t)

		body, contentType := newUpload(t, "wrongfield", "hero.png", "image/png")
		req := httptest.NewRequest(http.MethodPost, "/api/admin/banners/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		handler.UploadBannerImage(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateBanner(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"name":"Spring promo","image_url":"https://cdn.example.com/banners/x.png"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateBanner(gomock.Any(), "Spring promo", "https://cdn.example.com/banners/x.png").
					Return(&domain.Banner{ID: "b1", Name: "Spring promo"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "BadImageURL",
			body:         `{"name":"Spring promo","image_url":"not-a-url"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/banners", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateBanner(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetCategories(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListCategories(gomock.Any()).Return([]domain.Category{{ID: "c1", Name: "Cleaning"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil)
	w := httptest.NewRecorder()
	handler.GetCategories(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var categories []domain.Category
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
	assert.Len(t, categories, 1)
}

func TestCreateSubcategory(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"name":"Deep cleaning","category_id":"c1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateSubcategory(gomock.Any(), "Deep cleaning", "c1").
					Return(&domain.Subcategory{ID: "sc1", Name: "Deep cleaning", CategoryID: "c1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "MissingCategory",
			body:         `{"name":"Deep cleaning"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/subcategories", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateSubcategory(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteSubcategory(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().DeleteSubcategory(gomock.Any(), "sc1").Return(store.ErrMutationInFlight)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/subcategories/sc1?confirm=true", nil)
	req = withURLParam(req, "id", "sc1")
	w := httptest.NewRecorder()
	handler.DeleteSubcategory(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
