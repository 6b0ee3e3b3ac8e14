package directoryservice

import (
	"context"
	"errors"
	"testing"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPayoutCounter) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	directoryRepo := NewMockRepo(ctrl)
	payoutCounter := NewMockPayoutCounter(ctrl)
	service := New(directoryRepo, payoutCounter)
	return service, directoryRepo, payoutCounter
}

func TestListProviders(t *testing.T) {
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
			service, directoryRepo, _ := NewMock(t)
			ctx := context.Background()

			providers := []domain.Provider{{ID: "pr1", Name: "Alice's Plumbing"}}
			if tt.repoErr != nil {
				directoryRepo.EXPECT().FindAllProviders(gomock.Any()).Return(nil, tt.repoErr)
			} else {
				directoryRepo.EXPECT().FindAllProviders(gomock.Any()).Return(providers, nil)
			}

			got, err := service.ListProviders(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, providers, got)
			}
		})
	}
}

func TestListCustomers(t *testing.T) {
	service, directoryRepo, _ := NewMock(t)
	ctx := context.Background()

	customers := []domain.Customer{{ID: "c1", FirstName: "Bob"}, {ID: "c2", FirstName: "Carol"}}
	directoryRepo.EXPECT().FindAllCustomers(gomock.Any()).Return(customers, nil)

	got, err := service.ListCustomers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, customers, got)
}

func TestStats(t *testing.T) {
	tests := []struct {
		name       string
		countErr   error
		pendingErr error
		wantErr    bool
	}{
		{name: "Success"},
		{name: "CountError", countErr: errors.New("count failed"), wantErr: true},
		{name: "PendingError", pendingErr: errors.New("count failed"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, directoryRepo, payoutCounter := NewMock(t)
			ctx := context.Background()

			directoryRepo.EXPECT().CountProviders(gomock.Any()).Return(int64(12), tt.countErr)
			directoryRepo.EXPECT().CountCustomers(gomock.Any()).Return(int64(340), nil).MaxTimes(1)
			payoutCounter.EXPECT().CountPending(gomock.Any()).Return(int64(3), tt.pendingErr).MaxTimes(1)

			stats, err := service.Stats(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, stats)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &domain.DashboardStats{Providers: 12, Customers: 340, PendingPayouts: 3}, stats)
			}
		})
	}
}
