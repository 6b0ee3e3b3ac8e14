package payoutservice

import (
	"context"
	"errors"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/metrics"
	"github.com/fixora/adminapi/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// ErrNotPending is returned when a decision targets a request that has
// already been approved, completed or rejected. Processed requests never
// move again.
var ErrNotPending = errors.New("payout request is not pending")

type Repo interface {
	FindAll(ctx context.Context) ([]domain.PayoutRequest, error)
	Create(ctx context.Context, payout *domain.PayoutRequest) (*domain.PayoutRequest, error)
	Decide(ctx context.Context, id, status string) (*domain.PayoutRequest, error)
}

type Service struct {
	payoutRepo Repo
	payouts    *store.Store[domain.PayoutRequest]
}

func New(payoutRepo Repo) *Service {
	return &Service{
		payoutRepo: payoutRepo,
		payouts: store.New("payouts",
			func(p domain.PayoutRequest) string { return p.ID }, payoutRepo.FindAll),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.PayoutRequest, error) {
	return s.payouts.FetchAll(ctx)
}

func (s *Service) CreateRequest(ctx context.Context, providerID string, amount float64, note, cardNumber string) (*domain.PayoutRequest, error) {
	return s.payouts.Create(ctx, func(ctx context.Context) (*domain.PayoutRequest, error) {
		return s.payoutRepo.Create(ctx, &domain.PayoutRequest{
			ID:         uuid.NewString(),
			ProviderID: providerID,
			Amount:     amount,
			Status:     StatusPending,
			Note:       note,
			CardNumber: cardNumber,
		})
	})
}

func (s *Service) Approve(ctx context.Context, id string) (*domain.PayoutRequest, error) {
	return s.decide(ctx, id, StatusApproved)
}

func (s *Service) Reject(ctx context.Context, id string) (*domain.PayoutRequest, error) {
	return s.decide(ctx, id, StatusRejected)
}

func (s *Service) decide(ctx context.Context, id, status string) (*domain.PayoutRequest, error) {
	payout, err := s.payouts.Mutate(ctx, id, func(ctx context.Context) (*domain.PayoutRequest, error) {
		return s.payoutRepo.Decide(ctx, id, status)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.PayoutDecisionsTotal.WithLabelValues(status + "_conflict").Inc()
			return nil, ErrNotPending
		}
		return nil, err
	}
	metrics.PayoutDecisionsTotal.WithLabelValues(status).Inc()
	return payout, nil
}
