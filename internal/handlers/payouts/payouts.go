package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/dto"
	"github.com/fixora/adminapi/internal/service/payoutservice"
	"github.com/fixora/adminapi/internal/store"
	"github.com/fixora/adminapi/pkg/utils"
	"github.com/fixora/adminapi/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context) ([]domain.PayoutRequest, error)
	CreateRequest(ctx context.Context, providerID string, amount float64, note, cardNumber string) (*domain.PayoutRequest, error)
	Approve(ctx context.Context, id string) (*domain.PayoutRequest, error)
	Reject(ctx context.Context, id string) (*domain.PayoutRequest, error)
}

type PayoutsHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutsHandler {
	return &PayoutsHandler{
		payoutService: payoutService,
	}
}

// GetPayouts godoc
//
//	@Summary	List payout requests
//	@Tags		Payouts
//	@Produce	json
//	@Success	200	{array}		dto.PayoutResponseDTO
//	@Failure	500	{object}	utils.Response
//	@Router		/api/admin/payouts [get]
func (h *PayoutsHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payouts)
}

// CreatePayout godoc
//
//	@Summary		Register a payout request
//	@Description	Creates a pending payout request for a provider; the card number must pass a Luhn check
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout request body"
//	@Success		201		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response
//	@Failure		422		{object}	utils.Response	"Card number fails the Luhn check"
//	@Failure		500		{object}	utils.Response
//	@Router			/api/admin/payouts [post]
func (h *PayoutsHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Note = strings.TrimSpace(req.Note)
	req.CardNumber = strings.TrimSpace(req.CardNumber)
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validate.IsLuhn(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	payout, err := h.payoutService.CreateRequest(r.Context(), req.ProviderID, req.Amount, req.Note, req.CardNumber)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, payout)
}

// ApprovePayout godoc
//
//	@Summary		Approve a pending payout request
//	@Description	Only pending requests move; processed requests return 409
//	@Tags			Payouts
//	@Produce		json
//	@Param			id	path		string	true	"Payout request id"
//	@Success		200	{object}	dto.PayoutResponseDTO
//	@Failure		409	{object}	utils.Response	"Request already processed or an edit is in flight"
//	@Failure		500	{object}	utils.Response
//	@Router			/api/admin/payouts/{id}/approve [post]
func (h *PayoutsHandler) ApprovePayout(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.payoutService.Approve)
}

// RejectPayout godoc
//
//	@Summary		Reject a pending payout request
//	@Description	Only pending requests move; processed requests return 409
//	@Tags			Payouts
//	@Produce		json
//	@Param			id	path		string	true	"Payout request id"
//	@Success		200	{object}	dto.PayoutResponseDTO
//	@Failure		409	{object}	utils.Response	"Request already processed or an edit is in flight"
//	@Failure		500	{object}	utils.Response
//	@Router			/api/admin/payouts/{id}/reject [post]
func (h *PayoutsHandler) RejectPayout(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.payoutService.Reject)
}

func (h *PayoutsHandler) decide(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*domain.PayoutRequest, error)) {
	payout, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, store.ErrMutationInFlight):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payout)
}
