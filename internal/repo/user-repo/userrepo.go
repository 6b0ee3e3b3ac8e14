package userrepo

import (
	"context"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := repo.db.QueryRow(ctx,
		"SELECT id, email, password_hash FROM admin_users WHERE lower(email) = lower($1)", email).
		Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find admin user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	query := `
		INSERT INTO admin_sessions (id, email, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, session.ID, session.Email, session.ExpiresAt).Scan(&session.CreatedAt)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (repo *Repository) FindSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	err := repo.db.QueryRow(ctx,
		"SELECT id, email, expires_at, created_at FROM admin_sessions WHERE id = $1", id).
		Scan(&session.ID, &session.Email, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

func (repo *Repository) DeleteSession(ctx context.Context, id string) error {
	_, err := repo.db.Exec(ctx, `DELETE FROM admin_sessions WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := repo.db.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at < now()`)
	if err != nil {
		zap.L().Error("can't delete expired sessions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
