package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/api/middleware"
	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

type stubAuthService struct {
	signupFn       func(ctx context.Context, rc domain.RequestContext, in ports.SignupInput) (*domain.IssuedSession, error)
	loginFn        func(ctx context.Context, rc domain.RequestContext, email, password string) (*domain.IssuedSession, error)
	logoutFn       func(ctx context.Context, rc domain.RequestContext, token string) (*ports.LogoutResult, error)
	authenticateFn func(ctx context.Context, token string) (*domain.Principal, error)
}

func (s *stubAuthService) Signup(ctx context.Context, rc domain.RequestContext, in ports.SignupInput) (*domain.IssuedSession, error) {
	return s.signupFn(ctx, rc, in)
}

func (s *stubAuthService) Login(ctx context.Context, rc domain.RequestContext, email, password string) (*domain.IssuedSession, error) {
	return s.loginFn(ctx, rc, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, rc domain.RequestContext, token string) (*ports.LogoutResult, error) {
	return s.logoutFn(ctx, rc, token)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	if s.authenticateFn == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.authenticateFn(ctx, token)
}

func (s *stubAuthService) AuthorizeAdmin(context.Context, string) error { return nil }

type stubDecisionService struct {
	createFn  func(userID string, in ports.DecisionInput) (*domain.Decision, error)
	updateFn  func(userID, id string, in ports.DecisionInput) (*domain.Decision, error)
	deleteFn  func(userID, id string) error
	getFn     func(userID, id string) (*domain.Decision, error)
	listFn    func(f ports.ListDecisionsFilter) ([]*domain.Decision, error)
	similarFn func(userID, query string, limit int) ([]domain.SimilarDecision, error)
}

func (s *stubDecisionService) Create(_ context.Context, _ domain.RequestContext, userID string, in ports.DecisionInput) (*domain.Decision, error) {
	return s.createFn(userID, in)
}

func (s *stubDecisionService) Update(_ context.Context, _ domain.RequestContext, userID, id string, in ports.DecisionInput) (*domain.Decision, error) {
	return s.updateFn(userID, id, in)
}

func (s *stubDecisionService) Delete(_ context.Context, _ domain.RequestContext, userID, id string) error {
	return s.deleteFn(userID, id)
}

func (s *stubDecisionService) Get(_ context.Context, userID, id string) (*domain.Decision, error) {
	return s.getFn(userID, id)
}

func (s *stubDecisionService) List(_ context.Context, f ports.ListDecisionsFilter) ([]*domain.Decision, error) {
	return s.listFn(f)
}

func (s *stubDecisionService) Similar(_ context.Context, userID, query string, limit int) ([]domain.SimilarDecision, error) {
	return s.similarFn(userID, query, limit)
}

type stubOutcomeService struct {
	createFn func(userID, decisionID string, in ports.OutcomeInput) (*domain.Outcome, error)
	updateFn func(userID, outcomeID string, in ports.OutcomeInput) (*domain.Outcome, error)
	deleteFn func(userID, outcomeID string) error
	listFn   func(userID, decisionID string) ([]domain.Outcome, error)
}

func (s *stubOutcomeService) Create(_ context.Context, _ domain.RequestContext, userID, decisionID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	return s.createFn(userID, decisionID, in)
}

func (s *stubOutcomeService) Update(_ context.Context, _ domain.RequestContext, userID, outcomeID string, in ports.OutcomeInput) (*domain.Outcome, error) {
	return s.updateFn(userID, outcomeID, in)
}

func (s *stubOutcomeService) Delete(_ context.Context, _ domain.RequestContext, userID, outcomeID string) error {
	return s.deleteFn(userID, outcomeID)
}

func (s *stubOutcomeService) List(_ context.Context, userID, decisionID string) ([]domain.Outcome, error) {
	return s.listFn(userID, decisionID)
}

type stubAnalyticsService struct {
	rollupsFn  func(userID string, r ports.RollupRange) (*domain.Rollups, error)
	insightsFn func(userID, decisionID string) (*domain.Insights, error)
}

func (s *stubAnalyticsService) Rollups(_ context.Context, userID string, r ports.RollupRange) (*domain.Rollups, error) {
	return s.rollupsFn(userID, r)
}

func (s *stubAnalyticsService) Insights(_ context.Context, userID, decisionID string) (*domain.Insights, error) {
	return s.insightsFn(userID, decisionID)
}

type stubAdminService struct {
	gotLimit int
}

func (s *stubAdminService) ListUsers(context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "u1", Email: "a@x.com", Status: domain.UserStatusActive}}, nil
}

func (s *stubAdminService) ListAuditLogs(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	s.gotLimit = limit
	return []*domain.AuditEntry{}, nil
}

const (
	testUserID     = "0b0c9d55-6a4e-4f55-9d5b-0a1f3c0f2b11"
	testDecisionID = "6f1f7f5e-2d33-4a55-b0a8-6c2b3d4e5f60"
)

// newTestContext builds an echo context with the validator installed, the
// request context middleware applied and, unless anonymous, a principal.
func newTestContext(method, target, body string, anonymous bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderXRequestID, "req-test")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = middleware.RequestContext()(func(echo.Context) error { return nil })(c)
	if !anonymous {
		_ = middleware.Session(&stubAuthService{
			authenticateFn: func(context.Context, string) (*domain.Principal, error) {
				return &domain.Principal{SessionID: "s1", SessionType: domain.SessionTypeAccess, User: domain.Profile{ID: testUserID}}, nil
			},
		})(func(echo.Context) error { return nil })(c)
	}
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}
