package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.PayoutRequest
	}{
		{
			name: "Payouts found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "provider_id", "amount", "status", "note", "card_number", "created_at", "processed_at"}).
					AddRow("pr1", "p1", 120.50, "pending", "", "4561261212345467", now, (*time.Time)(nil)).
					AddRow("pr2", "p2", 80.0, "approved", "weekly", "4561261212345467", now, &now)
				mock.ExpectQuery("SELECT id, provider_id, amount, status, note, card_number, created_at, processed_at").
					WillReturnRows(rows)
			},
			result: []domain.PayoutRequest{
				{ID: "pr1", ProviderID: "p1", Amount: 120.50, Status: "pending", CardNumber: "4561261212345467", CreatedAt: now},
				{ID: "pr2", ProviderID: "p2", Amount: 80.0, Status: "approved", Note: "weekly", CardNumber: "4561261212345467", CreatedAt: now, ProcessedAt: &now},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, provider_id, amount, status, note, card_number, created_at, processed_at").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payouts, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, payouts)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		payout    *domain.PayoutRequest
		mockSetup func()
		expectErr bool
		result    *domain.PayoutRequest
	}{
		{
			name:   "Payout created",
			payout: &domain.PayoutRequest{ID: "pr1", ProviderID: "p1", Amount: 120.50, Status: "pending", Note: "first", CardNumber: "4561261212345467"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "provider_id", "amount", "status", "note", "card_number", "created_at", "processed_at"}).
					AddRow("pr1", "p1", 120.50, "pending", "first", "4561261212345467", now, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payout_requests (id, provider_id, amount, status, note, card_number)")).
					WithArgs("pr1", "p1", 120.50, "pending", "first", "4561261212345467").
					WillReturnRows(rows)
			},
			result: &domain.PayoutRequest{ID: "pr1", ProviderID: "p1", Amount: 120.50, Status: "pending", Note: "first", CardNumber: "4561261212345467", CreatedAt: now},
		},
		{
			name:   "Database error",
			payout: &domain.PayoutRequest{ID: "pr2", ProviderID: "p2", Amount: 10, Status: "pending", CardNumber: "4561261212345467"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payout_requests (id, provider_id, amount, status, note, card_number)")).
					WithArgs("pr2", "p2", float64(10), "pending", "", "4561261212345467").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), tt.payout)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Decide(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        string
		status    string
		mockSetup func()
		expectErr error
		anyErr    bool
		result    *domain.PayoutRequest
	}{
		{
			name:   "Pending request approved",
			id:     "pr1",
			status: "approved",
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				rows := pgxmock.NewRows([]string{"id", "provider_id", "amount", "status", "note", "card_number", "created_at", "processed_at"}).
					AddRow("pr1", "p1", 120.50, "approved", "", "4561261212345467", now, &now)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE payout_requests")).
					WithArgs("pr1", "approved").
					WillReturnRows(rows)
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payout_events (payout_id, action) VALUES ($1, $2)")).
					WithArgs("pr1", "approved").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			result: &domain.PayoutRequest{ID: "pr1", ProviderID: "p1", Amount: 120.50, Status: "approved", CardNumber: "4561261212345467", CreatedAt: now, ProcessedAt: &now},
		},
		{
			name:   "Request already decided",
			id:     "pr2",
			status: "rejected",
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE payout_requests")).
					WithArgs("pr2", "rejected").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: pgx.ErrNoRows,
			result:    nil,
		},
		{
			name:   "Audit insert fails",
			id:     "pr3",
			status: "approved",
			mockSetup: func() {
				mockTxManager.EXPECT().
					Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				rows := pgxmock.NewRows([]string{"id", "provider_id", "amount", "status", "note", "card_number", "created_at", "processed_at"}).
					AddRow("pr3", "p1", 50.0, "approved", "", "4561261212345467", now, &now)
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE payout_requests")).
					WithArgs("pr3", "approved").
					WillReturnRows(rows)
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payout_events (payout_id, action) VALUES ($1, $2)")).
					WithArgs("pr3", "approved").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
			result: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			decided, err := repo.Decide(context.Background(), tt.id, tt.status)
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, decided)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CountPending(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int64
	}{
		{
			name: "Count returned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM payout_requests WHERE status = 'pending'")).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
			},
			result: 3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM payout_requests WHERE status = 'pending'")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountPending(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
