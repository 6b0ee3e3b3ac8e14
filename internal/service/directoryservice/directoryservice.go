package directoryservice

import (
	"context"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	FindAllProviders(ctx context.Context) ([]domain.Provider, error)
	FindAllCustomers(ctx context.Context) ([]domain.Customer, error)
	CountProviders(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
}

// PayoutCounter supplies the pending-payout figure for the dashboard.
type PayoutCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

type Service struct {
	directoryRepo Repo
	payoutCounter PayoutCounter

	providers *store.Store[domain.Provider]
	customers *store.Store[domain.Customer]
}

func New(directoryRepo Repo, payoutCounter PayoutCounter) *Service {
	return &Service{
		directoryRepo: directoryRepo,
		payoutCounter: payoutCounter,
		providers: store.New("providers",
			func(p domain.Provider) string { return p.ID }, directoryRepo.FindAllProviders),
		customers: store.New("customers",
			func(c domain.Customer) string { return c.ID }, directoryRepo.FindAllCustomers),
	}
}

func (s *Service) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.FetchAll(ctx)
}

func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.FetchAll(ctx)
}

// Stats gathers the dashboard counters with one concurrent query per figure.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.directoryRepo.CountProviders(ctx)
		stats.Providers = n
		return err
	})
	g.Go(func() error {
		n, err := s.directoryRepo.CountCustomers(ctx)
		stats.Customers = n
		return err
	})
	g.Go(func() error {
		n, err := s.payoutCounter.CountPending(ctx)
		stats.PendingPayouts = n
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to collect dashboard stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
