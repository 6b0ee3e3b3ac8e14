package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/dto"
	"github.com/fixora/adminapi/internal/store"
	"github.com/fixora/adminapi/pkg/utils"
	"github.com/fixora/adminapi/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// maxImageSize caps banner uploads at 5 MiB.
const maxImageSize = 5 << 20

type Service interface {
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	CreateDocument(ctx context.Context, name string, active bool) (*domain.Document, error)
	UpdateDocument(ctx context.Context, id, name string, active bool) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id string) error

	ListBanners(ctx context.Context) ([]domain.Banner, error)
	UploadBannerImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	CreateBanner(ctx context.Context, name, imageURL string) (*domain.Banner, error)
	UpdateBanner(ctx context.Context, id, name, imageURL string) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubcategories(ctx context.Context) ([]domain.Subcategory, error)
	CreateSubcategory(ctx context.Context, name, categoryID string) (*domain.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id, name, categoryID string) (*domain.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetDocuments godoc
//
//	@Summary	List provider verification documents
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.DocumentResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/documents [get]
func (h *CatalogHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.catalogService.ListDocuments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, documents)
}

// CreateDocument godoc
//
//	@Summary	Add a verification document type
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DocumentRequestDTO	true	"Document body"
//	@Success	201		{object}	dto.DocumentResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	500		{object}	utils.Response
//	@Router		/api/admin/documents [post]
func (h *CatalogHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	document, err := h.catalogService.CreateDocument(r.Context(), req.Name, req.Active)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, document)
}

// UpdateDocument godoc
//
//	@Summary	Update a verification document type
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Document id"
//	@Param		request	body		dto.DocumentRequestDTO	true	"Document body"
//	@Success	200		{object}	dto.DocumentResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Another edit of this row is in flight"
//	@Router		/api/admin/documents/{id} [put]
func (h *CatalogHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	document, err := h.catalogService.UpdateDocument(r.Context(), chi.URLParam(r, "id"), req.Name, req.Active)
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, document)
}

// DeleteDocument godoc
//
//	@Summary	Remove a verification document type
//	@Tags		Catalog
//	@Produce	json
//	@Param		id		path		string	true	"Document id"
//	@Param		confirm	query		bool	true	"Must be true"
//	@Success	204		"No Content"
//	@Failure	400		{object}	utils.Response	"Missing confirm=true"
//	@Failure	404		{object}	utils.Response
//	@Router		/api/admin/documents/{id} [delete]
func (h *CatalogHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if !confirmed(w, r) {
		return
	}
	if err := h.catalogService.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetBanners godoc
//
//	@Summary	List promo banners
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.BannerResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/banners [get]
func (h *CatalogHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.catalogService.ListBanners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, banners)
}

// UploadBannerImage godoc
//
//	@Summary	Upload a banner image
//	@Description	Accepts a multipart form with an "image" file part and returns its public URL
//	@Tags		Catalog
//	@Accept		mpfd
//	@Produce	json
//	@Success	200	{object}	dto.UploadImageResponseDTO
//	@Failure	400	{object}	utils.Response
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/banners/image [post]
func (h *CatalogHandler) UploadBannerImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(w, http.StatusBadRequest, "File is not an image")
		return
	}
	url, err := h.catalogService.UploadBannerImage(r.Context(), header.Filename, contentType, file)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UploadImageResponseDTO{URL: url})
}

// CreateBanner godoc
//
//	@Summary	Add a promo banner
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BannerRequestDTO	true	"Banner body"
//	@Success	201		{object}	dto.BannerResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	500		{object}	utils.Response
//	@Router		/api/admin/banners [post]
func (h *CatalogHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBanner(w, r)
	if !ok {
		return
	}
	banner, err := h.catalogService.CreateBanner(r.Context(), req.Name, req.ImageURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, banner)
}

// UpdateBanner godoc
//
//	@Summary	Update a promo banner
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Banner id"
//	@Param		request	body		dto.BannerRequestDTO	true	"Banner body"
//	@Success	200		{object}	dto.BannerResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Another edit of this row is in flight"
//	@Router		/api/admin/banners/{id} [put]
func (h *CatalogHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBanner(w, r)
	if !ok {
		return
	}
	banner, err := h.catalogService.UpdateBanner(r.Context(), chi.URLParam(r, "id"), req.Name, req.ImageURL)
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, banner)
}

// DeleteBanner godoc
//
//	@Summary	Remove a promo banner
//	@Tags		Catalog
//	@Produce	json
//	@Param		id		path		string	true	"Banner id"
//	@Param		confirm	query		bool	true	"Must be true"
//	@Success	204		"No Content"
//	@Failure	400		{object}	utils.Response	"Missing confirm=true"
//	@Failure	404		{object}	utils.Response
//	@Router		/api/admin/banners/{id} [delete]
func (h *CatalogHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if !confirmed(w, r) {
		return
	}
	if err := h.catalogService.DeleteBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GetCategories godoc
//
//	@Summary	List service categories
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.CategoryResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/categories [get]
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// GetSubcategories godoc
//
//	@Summary	List service subcategories
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.SubcategoryResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/subcategories [get]
func (h *CatalogHandler) GetSubcategories(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.catalogService.ListSubcategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subcategories)
}

// CreateSubcategory godoc
//
//	@Summary	Add a service subcategory
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SubcategoryRequestDTO	true	"Subcategory body"
//	@Success	201		{object}	dto.SubcategoryResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	500		{object}	utils.Response
//	@Router		/api/admin/subcategories [post]
func (h *CatalogHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSubcategory(w, r)
	if !ok {
		return
	}
	subcategory, err := h.catalogService.CreateSubcategory(r.Context(), req.Name, req.CategoryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, subcategory)
}

// UpdateSubcategory godoc
//
//	@Summary	Update a service subcategory
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Subcategory id"
//	@Param		request	body		dto.SubcategoryRequestDTO	true	"Subcategory body"
//	@Success	200		{object}	dto.SubcategoryResponseDTO
//	@Failure	400		{object}	utils.Response
//	@Failure	404		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Another edit of this row is in flight"
//	@Router		/api/admin/subcategories/{id} [put]
func (h *CatalogHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSubcategory(w, r)
	if !ok {
		return
	}
	subcategory, err := h.catalogService.UpdateSubcategory(r.Context(), chi.URLParam(r, "id"), req.Name, req.CategoryID)
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subcategory)
}

// DeleteSubcategory godoc
//
//	@Summary	Remove a service subcategory
//	@Tags		Catalog
//	@Produce	json
//	@Param		id		path		string	true	"Subcategory id"
//	@Param		confirm	query		bool	true	"Must be true"
//	@Success	204		"No Content"
//	@Failure	400		{object}	utils.Response	"Missing confirm=true"
//	@Failure	404		{object}	utils.Response
//	@Router		/api/admin/subcategories/{id} [delete]
func (h *CatalogHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	if !confirmed(w, r) {
		return
	}
	if err := h.catalogService.DeleteSubcategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func decodeDocument(w http.ResponseWriter, r *http.Request) (dto.DocumentRequestDTO, bool) {
	var req dto.DocumentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func decodeBanner(w http.ResponseWriter, r *http.Request) (dto.BannerRequestDTO, bool) {
	var req dto.BannerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func decodeSubcategory(w http.ResponseWriter, r *http.Request) (dto.SubcategoryRequestDTO, bool) {
	var req dto.SubcategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

// confirmed rejects destructive calls that do not carry confirm=true. The
// confirmation lives in the request so a stray DELETE can never drop a row.
func confirmed(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("confirm") != "true" {
		utils.RespondWithError(w, http.StatusBadRequest, "Deletion requires confirm=true")
		return false
	}
	return true
}

func respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrMutationInFlight):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pgx.ErrNoRows):
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
