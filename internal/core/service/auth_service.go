package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
	"github.com/decisionreplay/backend/internal/core/security"
	"github.com/decisionreplay/backend/internal/pkg/metrics"
)

const defaultTokenTTL = 24 * time.Hour

// AuthOptions tunes AuthService. Zero values select the defaults.
type AuthOptions struct {
	TokenTTL     time.Duration
	PasswordCost int
	// TouchLimiter throttles last_used_at writes; nil touches on every request.
	TouchLimiter ports.SessionTouchLimiter
	Clock        func() time.Time
}

// AuthService implements signup, login, logout and the per-request session
// guard.
type AuthService struct {
	repo     ports.AuthRepository
	audit    *AuditRecorder
	runner   ports.TaskRunner
	hasher   *security.Hasher
	touch    ports.SessionTouchLimiter
	tokenTTL time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.AuthRepository, audit *AuditRecorder, runner ports.TaskRunner, opts AuthOptions, log zerolog.Logger) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &AuthService{
		repo:     repo,
		audit:    audit,
		runner:   runner,
		hasher:   security.NewHasher(opts.PasswordCost),
		touch:    opts.TouchLimiter,
		tokenTTL: opts.TokenTTL,
		now:      opts.Clock,
		log:      log,
	}
}

// Signup creates an active user with the default role and a first session.
func (s *AuthService) Signup(ctx context.Context, rc domain.RequestContext, in ports.SignupInput) (*domain.IssuedSession, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	token, ns, err := s.newSession(rc)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user, session, err := s.repo.CreateUserWithSession(ctx, ports.NewUser{
		Email:        in.Email,
		Username:     in.Username,
		DisplayName:  in.DisplayName,
		PasswordHash: hash,
	}, ns)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Str("request_id", rc.RequestID).Msg("user signed up")
	s.audit.Record(rc, domain.AuditEntry{
		UserID:     user.ID,
		Action:     domain.ActionSignup,
		EntityType: "user",
		EntityID:   user.ID,
		Severity:   domain.SeveritySecurity,
		Message:    "User signed up.",
	})

	return &domain.IssuedSession{User: user.Profile(), AccessToken: token, ExpiresAt: expiryOf(session, ns)}, nil
}

// Login verifies credentials and issues a new session. Missing, deleted and
// password mismatch all yield the same error.
func (s *AuthService) Login(ctx context.Context, rc domain.RequestContext, email, password string) (*domain.IssuedSession, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if user.DeletedAt != nil || !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.UserStatusActive {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return nil, domain.ErrUserDisabled
	}

	token, ns, err := s.newSession(rc)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	session, err := s.repo.RecordLogin(ctx, user.ID, ns)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.audit.Record(rc, domain.AuditEntry{
		UserID:     user.ID,
		Action:     domain.ActionLogin,
		EntityType: "session",
		EntityID:   session.ID,
		Severity:   domain.SeveritySecurity,
		Message:    "User logged in.",
	})

	return &domain.IssuedSession{User: user.Profile(), AccessToken: token, ExpiresAt: expiryOf(session, ns)}, nil
}

// Logout revokes the session behind accessToken. Revoking an unknown or
// already revoked session is not an error.
func (s *AuthService) Logout(ctx context.Context, rc domain.RequestContext, accessToken string) (*ports.LogoutResult, error) {
	if accessToken == "" {
		return &ports.LogoutResult{Revoked: false}, nil
	}

	userID, revoked, err := s.repo.RevokeSession(ctx, security.HashToken(accessToken))
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}

	s.audit.Record(rc, domain.AuditEntry{
		UserID:     userID,
		Action:     domain.ActionLogout,
		EntityType: "session",
		Severity:   domain.SeveritySecurity,
		Message:    "User logged out.",
		Metadata:   map[string]any{"revoked": revoked},
	})

	return &ports.LogoutResult{Revoked: revoked}, nil
}

// Authenticate resolves a bearer token to its principal. Every rejection is
// the same UNAUTHORIZED error so callers cannot tell why.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error) {
	if accessToken == "" {
		metrics.AuthenticationFailuresTotal.WithLabelValues("missing").Inc()
		return nil, domain.ErrUnauthorized.WithMessage("Missing Authorization Bearer token.")
	}

	session, user, err := s.repo.FindSessionByTokenHash(ctx, security.HashToken(accessToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.AuthenticationFailuresTotal.WithLabelValues("unknown").Inc()
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if reason := s.rejectReason(session, user); reason != "" {
		metrics.AuthenticationFailuresTotal.WithLabelValues(reason).Inc()
		return nil, domain.ErrUnauthorized
	}

	s.touchSession(session.ID)

	return &domain.Principal{
		SessionID:   session.ID,
		SessionType: session.SessionType,
		User:        user.Profile(),
	}, nil
}

// AuthorizeAdmin requires the admin role grant.
func (s *AuthService) AuthorizeAdmin(ctx context.Context, userID string) error {
	ok, err := s.repo.HasRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("authorize admin: %w", err)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AuthService) rejectReason(session *domain.AuthSession, user *domain.User) string {
	switch {
	case session.SessionType != domain.SessionTypeAccess:
		return "unknown"
	case session.RevokedAt != nil:
		return "revoked"
	case !session.ValidAt(s.now()):
		return "expired"
	case user == nil || !user.IsActive():
		return "inactive_user"
	}
	return ""
}

// touchSession stamps last_used_at in the background. Failures are ignored.
func (s *AuthService) touchSession(sessionID string) {
	s.runner.Go("session.touch", func(ctx context.Context) error {
		if s.touch != nil {
			due, err := s.touch.Allow(ctx, sessionID)
			if err == nil && !due {
				return nil
			}
		}
		return s.repo.TouchSession(ctx, sessionID)
	})
}

func (s *AuthService) newSession(rc domain.RequestContext) (string, ports.NewSession, error) {
	token, err := security.GenerateOpaqueToken(security.DefaultTokenBytes)
	if err != nil {
		return "", ports.NewSession{}, err
	}
	return token, ports.NewSession{
		TokenHash: security.HashToken(token),
		ExpiresAt: s.now().Add(s.tokenTTL).UTC(),
		IP:        rc.IP,
		UserAgent: rc.UserAgent,
	}, nil
}

func expiryOf(session *domain.AuthSession, ns ports.NewSession) time.Time {
	if session != nil && session.ExpiresAt != nil {
		return *session.ExpiresAt
	}
	return ns.ExpiresAt
}
