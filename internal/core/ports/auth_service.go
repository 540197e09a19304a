package ports

import (
	"context"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// SignupInput is the validated signup payload.
type SignupInput struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
}

// LogoutResult reports whether a live session was revoked.
type LogoutResult struct {
	Revoked bool `json:"revoked"`
}

type AuthService interface {
	Signup(ctx context.Context, rc domain.RequestContext, in SignupInput) (*domain.IssuedSession, error)
	Login(ctx context.Context, rc domain.RequestContext, email, password string) (*domain.IssuedSession, error)
	Logout(ctx context.Context, rc domain.RequestContext, accessToken string) (*LogoutResult, error)
	Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error)
	AuthorizeAdmin(ctx context.Context, userID string) error
}
