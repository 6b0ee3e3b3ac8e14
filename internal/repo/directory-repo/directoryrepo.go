package directoryrepo

import (
	"context"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/internal/pg"
	"go.uber.org/zap"
)

// Repository reads the provider and customer directories. Both are
// read-only for the admin surface.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAllProviders(ctx context.Context) ([]domain.Provider, error) {
	query := `
        SELECT id, name, email, phone, address, country_code, created_at
        FROM providers
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch providers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var providers []domain.Provider
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.CountryCode, &p.CreatedAt); err != nil {
			zap.L().Error("failed to scan provider row", zap.Error(err))
			return nil, err
		}
		providers = append(providers, p)
	}

	return providers, nil
}

func (r *Repository) FindAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
        SELECT id, first_name, last_name, email, phone, address, last_request_at
        FROM customers
        ORDER BY last_request_at DESC NULLS LAST
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.LastRequestAt); err != nil {
			zap.L().Error("failed to scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (r *Repository) CountProviders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM providers`).Scan(&count); err != nil {
		zap.L().Error("failed to count providers", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&count); err != nil {
		zap.L().Error("failed to count customers", zap.Error(err))
		return 0, err
	}
	return count, nil
}
