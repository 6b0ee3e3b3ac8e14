package settingsrepo

import (
	"context"
	"encoding/json"
	"errors"

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

// Get returns the singleton settings row, or nil when it has not been
// created yet. Absence is not an error.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
        SELECT app, general, policy, payment, updated_at
        FROM settings
        WHERE id = 1
    `
	var app, general, policy, payment []byte
	var settings domain.Settings

	err := r.db.QueryRow(ctx, query).Scan(&app, &general, &policy, &payment, &settings.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to fetch settings", zap.Error(err))
		return nil, err
	}

	for _, group := range []struct {
		data []byte
		dst  *domain.SettingGroup
	}{
		{app, &settings.App},
		{general, &settings.General},
		{policy, &settings.Policy},
		{payment, &settings.Payment},
	} {
		if err := json.Unmarshal(group.data, group.dst); err != nil {
			zap.L().Error("failed to decode settings group", zap.Error(err))
			return nil, err
		}
	}

	return &settings, nil
}

// Upsert performs a full replace of all settings groups.
func (r *Repository) Upsert(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	app, err := json.Marshal(settings.App)
	if err != nil {
		return nil, err
	}
	general, err := json.Marshal(settings.General)
	if err != nil {
		return nil, err
	}
	policy, err := json.Marshal(settings.Policy)
	if err != nil {
		return nil, err
	}
	payment, err := json.Marshal(settings.Payment)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO settings (id, app, general, policy, payment, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET app = $1, general = $2, policy = $3, payment = $4, updated_at = now()
		RETURNING updated_at
	`
	saved := *settings
	if err := r.db.QueryRow(ctx, query, app, general, policy, payment).Scan(&saved.UpdatedAt); err != nil {
		zap.L().Error("can't save settings", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}
