package payoutrepo

import (
	"context"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.PayoutRequest, error) {
	query := `
        SELECT id, provider_id, amount, status, note, card_number, created_at, processed_at
        FROM payout_requests
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch payout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.PayoutRequest
	for rows.Next() {
		var p domain.PayoutRequest
		err := rows.Scan(&p.ID, &p.ProviderID, &p.Amount, &p.Status, &p.Note, &p.CardNumber, &p.CreatedAt, &p.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}

	return payouts, nil
}

func (r *Repository) Create(ctx context.Context, payout *domain.PayoutRequest) (*domain.PayoutRequest, error) {
	query := `
		INSERT INTO payout_requests (id, provider_id, amount, status, note, card_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, provider_id, amount, status, note, card_number, created_at, processed_at
	`
	var created domain.PayoutRequest
	err := r.db.QueryRow(ctx, query, payout.ID, payout.ProviderID, payout.Amount, payout.Status, payout.Note, payout.CardNumber).
		Scan(&created.ID, &created.ProviderID, &created.Amount, &created.Status, &created.Note, &created.CardNumber, &created.CreatedAt, &created.ProcessedAt)
	if err != nil {
		zap.L().Error("can't save payout request", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// Decide moves a pending request to the given status and records the
// decision in the audit trail within one transaction. The conditional
// UPDATE is what enforces the pending-only transition: a request already
// decided matches no row.
func (r *Repository) Decide(ctx context.Context, id, status string) (*domain.PayoutRequest, error) {
	var decided domain.PayoutRequest

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			UPDATE payout_requests
			SET status = $2, processed_at = now()
			WHERE id = $1 AND status = 'pending'
			RETURNING id, provider_id, amount, status, note, card_number, created_at, processed_at
		`
		err := r.db.QueryRow(ctx, query, id, status).
			Scan(&decided.ID, &decided.ProviderID, &decided.Amount, &decided.Status, &decided.Note, &decided.CardNumber, &decided.CreatedAt, &decided.ProcessedAt)
		if err != nil {
			return err
		}

		_, err = r.db.Exec(ctx, `INSERT INTO payout_events (payout_id, action) VALUES ($1, $2)`, id, status)
		return err
	})
	if err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("can't decide payout request", zap.Error(err))
		}
		return nil, err
	}

	return &decided, nil
}

func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM payout_requests WHERE status = 'pending'`).Scan(&count); err != nil {
		zap.L().Error("failed to count pending payouts", zap.Error(err))
		return 0, err
	}
	return count, nil
}
