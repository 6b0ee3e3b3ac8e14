package bannerrepo

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Banner, error) {
	query := `
        SELECT id, name, image_url, created_at
        FROM banners
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch banners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var banners []domain.Banner
	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(&b.ID, &b.Name, &b.ImageURL, &b.CreatedAt); err != nil {
			zap.L().Error("failed to scan banner row", zap.Error(err))
			return nil, err
		}
		banners = append(banners, b)
	}

	return banners, nil
}

func (r *Repository) Create(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	query := `
		INSERT INTO banners (id, name, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, image_url, created_at
	`
	var created domain.Banner
	err := r.db.QueryRow(ctx, query, banner.ID, banner.Name, banner.ImageURL).
		Scan(&created.ID, &created.Name, &created.ImageURL, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't save banner", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	query := `
		UPDATE banners
		SET name = $2, image_url = $3
		WHERE id = $1
		RETURNING id, name, image_url, created_at
	`
	var updated domain.Banner
	err := r.db.QueryRow(ctx, query, banner.ID, banner.Name, banner.ImageURL).
		Scan(&updated.ID, &updated.Name, &updated.ImageURL, &updated.CreatedAt)
	if err != nil {
		zap.L().Error("can't update banner", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete banner", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
