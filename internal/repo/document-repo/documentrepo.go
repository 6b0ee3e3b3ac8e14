package documentrepo

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Document, error) {
	query := `
        SELECT id, name, active
        FROM documents
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch documents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var documents []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Active); err != nil {
			zap.L().Error("failed to scan document row", zap.Error(err))
			return nil, err
		}
		documents = append(documents, doc)
	}

	return documents, nil
}

func (r *Repository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	query := `
		INSERT INTO documents (id, name, active)
		VALUES ($1, $2, $3)
		RETURNING id, name, active
	`
	var created domain.Document
	err := r.db.QueryRow(ctx, query, doc.ID, doc.Name, doc.Active).Scan(&created.ID, &created.Name, &created.Active)
	if err != nil {
		zap.L().Error("can't save document", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	query := `
		UPDATE documents
		SET name = $2, active = $3
		WHERE id = $1
		RETURNING id, name, active
	`
	var updated domain.Document
	err := r.db.QueryRow(ctx, query, doc.ID, doc.Name, doc.Active).Scan(&updated.ID, &updated.Name, &updated.Active)
	if err != nil {
		zap.L().Error("can't update document", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete document", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
