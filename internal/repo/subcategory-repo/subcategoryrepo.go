package subcategoryrepo

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

func (r *Repository) FindAllCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		zap.L().Error("failed to fetch categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			zap.L().Error("failed to scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Subcategory, error) {
	query := `
        SELECT id, name, category_id
        FROM subcategories
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch subcategories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subcategories []domain.Subcategory
	for rows.Next() {
		var sc domain.Subcategory
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.CategoryID); err != nil {
			zap.L().Error("failed to scan subcategory row", zap.Error(err))
			return nil, err
		}
		subcategories = append(subcategories, sc)
	}

	return subcategories, nil
}

func (r *Repository) Create(ctx context.Context, sc *domain.Subcategory) (*domain.Subcategory, error) {
	query := `
		INSERT INTO subcategories (id, name, category_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, category_id
	`
	var created domain.Subcategory
	err := r.db.QueryRow(ctx, query, sc.ID, sc.Name, sc.CategoryID).
		Scan(&created.ID, &created.Name, &created.CategoryID)
	if err != nil {
		zap.L().Error("can't save subcategory", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, sc *domain.Subcategory) (*domain.Subcategory, error) {
	query := `
		UPDATE subcategories
		SET name = $2, category_id = $3
		WHERE id = $1
		RETURNING id, name, category_id
	`
	var updated domain.Subcategory
	err := r.db.QueryRow(ctx, query, sc.ID, sc.Name, sc.CategoryID).
		Scan(&updated.ID, &updated.Name, &updated.CategoryID)
	if err != nil {
		zap.L().Error("can't update subcategory", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete subcategory", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
