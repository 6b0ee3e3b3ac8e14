package directory

import (
	"context"
	"net/http"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/pkg/utils"
)

type Service interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type DirectoryHandler struct {
	directoryService Service
}

func New(directoryService Service) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// GetProviders godoc
//
//	@Summary	List service providers
//	@Tags		Directory
//	@Produce	json
//	@Success	200	{array}		dto.ProviderResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/providers [get]
func (h *DirectoryHandler) GetProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.directoryService.ListProviders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, providers)
}

// GetCustomers godoc
//
//	@Summary	List customers
//	@Tags		Directory
//	@Produce	json
//	@Success	200	{array}		dto.CustomerResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/customers [get]
func (h *DirectoryHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.directoryService.ListCustomers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customers)
}

// GetStats godoc
//
//	@Summary	Dashboard counters
//	@Tags		Directory
//	@Produce	json
//	@Success	200	{object}	dto.DashboardStatsResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/stats [get]
func (h *DirectoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.directoryService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
