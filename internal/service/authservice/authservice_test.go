package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.JWTService) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	jwtService := auth.NewJWTService("test-secret")
	service := New(repo, &auth.HashService{}, jwtService, time.Hour)
	defer ctrl.Finish()
	return service, repo, jwtService
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := (&auth.HashService{}).HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()
	passwordHash := hashFor(t, "password123")

	tests := []struct {
		name        string
		email       string
		password    string
		prepareMock func()
		expectedErr error
	}{
		{
			name:     "Successful login",
			email:    "admin@fixora.app",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@fixora.app").Return(&domain.AdminUser{
					ID:           "u1",
					Email:        "admin@fixora.app",
					PasswordHash: passwordHash,
				}, nil)
				repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, s *domain.Session) (*domain.Session, error) {
						assert.NotEmpty(t, s.ID)
						assert.Equal(t, "admin@fixora.app", s.Email)
						assert.True(t, s.ExpiresAt.After(time.Now()))
						return s, nil
					})
			},
		},
		{
			name:     "Unknown email",
			email:    "nobody@fixora.app",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "nobody@fixora.app").Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			email:    "admin@fixora.app",
			password: "wrong",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@fixora.app").Return(&domain.AdminUser{
					ID:           "u1",
					Email:        "admin@fixora.app",
					PasswordHash: passwordHash,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Session insert fails",
			email:    "admin@fixora.app",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@fixora.app").Return(&domain.AdminUser{
					ID:           "u1",
					Email:        "admin@fixora.app",
					PasswordHash: passwordHash,
				}, nil)
				repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.Login(ctx, tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestCheckSession(t *testing.T) {
	service, repo, jwtService := NewMock(t)
	ctx := context.Background()

	token, err := jwtService.GenerateJWT("sess-1", "admin@fixora.app", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Run("Valid session", func(t *testing.T) {
		repo.EXPECT().FindSessionByID(gomock.Any(), "sess-1").Return(&domain.Session{
			ID:        "sess-1",
			Email:     "admin@fixora.app",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		session, err := service.CheckSession(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "admin@fixora.app", session.Email)
	})

	t.Run("Invalid token", func(t *testing.T) {
		_, err := service.CheckSession(ctx, "garbage")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("Session row missing", func(t *testing.T) {
		repo.EXPECT().FindSessionByID(gomock.Any(), "sess-1").Return(nil, nil)

		_, err := service.CheckSession(ctx, token)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("Expired session is deleted", func(t *testing.T) {
		repo.EXPECT().FindSessionByID(gomock.Any(), "sess-1").Return(&domain.Session{
			ID:        "sess-1",
			Email:     "admin@fixora.app",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		repo.EXPECT().DeleteSession(gomock.Any(), "sess-1").Return(nil)

		_, err := service.CheckSession(ctx, token)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().FindSessionByID(gomock.Any(), "sess-1").Return(nil, errors.New("database error"))

		_, err := service.CheckSession(ctx, token)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoSession)
	})
}

func TestSignOut(t *testing.T) {
	service, repo, jwtService := NewMock(t)
	ctx := context.Background()

	token, err := jwtService.GenerateJWT("sess-1", "admin@fixora.app", time.Now().Add(time.Hour))
	require.NoError(t, err)

	repo.EXPECT().DeleteSession(gomock.Any(), "sess-1").Return(nil)
	assert.NoError(t, service.SignOut(ctx, token))

	// unparseable token: nothing to drop
	assert.NoError(t, service.SignOut(ctx, "garbage"))
}

func TestPurgeExpired(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(3), nil)
	purged, err := service.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)

	repo.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(0), errors.New("database error"))
	_, err = service.PurgeExpired(ctx)
	assert.Error(t, err)
}
