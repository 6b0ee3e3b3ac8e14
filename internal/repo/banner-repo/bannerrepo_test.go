package bannerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Banner
	}{
		{
			name: "Banners found, newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "image_url", "created_at"}).
					AddRow("b2", "Summer promo", "https://cdn.example.com/b2.png", now).
					AddRow("b1", "Spring promo", "https://cdn.example.com/b1.png", now.Add(-time.Hour))
				mock.ExpectQuery("SELECT id, name, image_url, created_at").WillReturnRows(rows)
			},
			result: []domain.Banner{
				{ID: "b2", Name: "Summer promo", ImageURL: "https://cdn.example.com/b2.png", CreatedAt: now},
				{ID: "b1", Name: "Spring promo", ImageURL: "https://cdn.example.com/b1.png", CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, name, image_url, created_at").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Create banner successfully", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO banners (id, name, image_url)")).
			WithArgs("b1", "Spring promo", "https://cdn.example.com/b1.png").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "image_url", "created_at"}).
				AddRow("b1", "Spring promo", "https://cdn.example.com/b1.png", now))

		created, err := repo.Create(context.Background(), &domain.Banner{
			ID: "b1", Name: "Spring promo", ImageURL: "https://cdn.example.com/b1.png",
		})
		assert.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO banners (id, name, image_url)")).
			WithArgs("b1", "Spring promo", "https://cdn.example.com/b1.png").
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Banner{
			ID: "b1", Name: "Spring promo", ImageURL: "https://cdn.example.com/b1.png",
		})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Update successfully", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE banners")).
			WithArgs("b1", "Renamed", "https://cdn.example.com/new.png").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "image_url", "created_at"}).
				AddRow("b1", "Renamed", "https://cdn.example.com/new.png", now))

		updated, err := repo.Update(context.Background(), &domain.Banner{
			ID: "b1", Name: "Renamed", ImageURL: "https://cdn.example.com/new.png",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("Row missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE banners")).
			WithArgs("missing", "Renamed", "https://cdn.example.com/new.png").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(context.Background(), &domain.Banner{
			ID: "missing", Name: "Renamed", ImageURL: "https://cdn.example.com/new.png",
		})
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Delete successfully", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM banners WHERE id = $1`)).
			WithArgs("b1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), "b1"))
	})

	t.Run("Row missing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM banners WHERE id = $1`)).
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), pgx.ErrNoRows)
	})
}
