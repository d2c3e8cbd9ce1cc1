// Package auth implements email/password login with Redis-backed sessions and
// PASETO access/refresh tokens. Failed-login lockout is tracked in Redis so it
// survives across instances without extra user columns.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aruizdev/fisioclinic_backend/config"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entuser "github.com/aruizdev/fisioclinic_backend/internal/repo/user"
	pasetotoken "github.com/aruizdev/fisioclinic_backend/pkg/paseto"
	"github.com/aruizdev/fisioclinic_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
)

func redisKeySession(sessionID string) string { return "session:" + sessionID }
func redisKeyLoginFails(email string) string  { return "login:fails:" + email }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(db *repo.Client, rdb *redis.Client, paseto *pasetotoken.Manager, cfg *config.Config) Service {
	return &authService{db: db, rdb: rdb, paseto: paseto, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	fails, _ := s.rdb.Get(ctx, redisKeyLoginFails(req.Email)).Int()
	if fails >= maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, req.Email)
		return nil, ErrInvalidCredentials
	}

	s.rdb.Del(ctx, redisKeyLoginFails(req.Email))

	return s.createSession(ctx, u)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Sliding session: each refresh extends the session TTL.
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Already expired; not an error from the client's perspective.
		slog.Debug("logout: session not found in Redis", "session_id", sessionID)
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.db.User.UpdateOne(u).SetPasswordHash(newHash).Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, email string) {
	key := redisKeyLoginFails(email)
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("record failed login", "error", err)
		return
	}
	if n == 1 || n >= maxLoginAttempts {
		s.rdb.Expire(ctx, key, lockoutDuration)
	}
}
