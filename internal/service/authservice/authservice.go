package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error)
	FindSessionByID(ctx context.Context, id string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session")
	ErrSessionExpired     = errors.New("session expired")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sessionTTL  time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sessionTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
	}
}

// Login verifies credentials, persists a session row and returns a signed
// token carrying the session id.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return "", ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return "", ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Email:     user.Email,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if _, err := s.userRepo.CreateSession(ctx, session); err != nil {
		zap.L().Error("can't create session: ", zap.Error(err))
		return "", err
	}

	token, err := s.jwtService.GenerateJWT(session.ID, session.Email, session.ExpiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}

	zap.L().Info("admin successfully authenticated", zap.String("email", user.Email))
	return token, nil
}

// CheckSession resolves a token to its persisted session. An expired row is
// deleted on sight and reads as no session.
func (s *Service) CheckSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	session, err := s.userRepo.FindSessionByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}
	if session.ExpiresAt.Before(time.Now()) {
		if err := s.userRepo.DeleteSession(ctx, session.ID); err != nil {
			zap.L().Error("can't delete expired session", zap.Error(err))
		}
		return nil, ErrSessionExpired
	}

	return session, nil
}

// SignOut drops the session row behind the token. An unparseable token has
// no session to drop and is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.userRepo.DeleteSession(ctx, claims.SessionID)
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.userRepo.DeleteExpiredSessions(ctx)
	if err != nil {
		zap.L().Error("failed to purge expired sessions", zap.Error(err))
		return 0, err
	}
	return purged, nil
}
