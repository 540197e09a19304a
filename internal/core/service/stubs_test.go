package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Task runner and audit sink
// ---------------------------------------------------------------------------

// syncRunner runs tasks inline so tests can assert on their effects.
type syncRunner struct {
	names []string
	errs  []error
}

func (r *syncRunner) Go(name string, fn func(ctx context.Context) error) {
	r.names = append(r.names, name)
	if err := fn(context.Background()); err != nil {
		r.errs = append(r.errs, err)
	}
}

type stubAuditSink struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	err     error
}

func (s *stubAuditSink) Append(_ context.Context, e *domain.AuditEntry) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *stubAuditSink) ListRecent(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.AuditEntry{}
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := s.entries[i]
		out = append(out, &e)
	}
	return out, nil
}

func (s *stubAuditSink) actions() []string {
	var out []string
	for _, e := range s.entries {
		out = append(out, e.Action)
	}
	return out
}

// ---------------------------------------------------------------------------
// In-memory auth repository
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	users    map[string]*domain.User
	sessions map[string]*domain.AuthSession // by token hash
	roles    map[string][]string
	touched  []string
	seq      int
	findErr  error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{
		users:    make(map[string]*domain.User),
		sessions: make(map[string]*domain.AuthSession),
		roles:    make(map[string][]string),
	}
}

func (r *stubAuthRepo) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s_%d", prefix, r.seq)
}

func (r *stubAuthRepo) insertSession(userID string, ns ports.NewSession) *domain.AuthSession {
	exp := ns.ExpiresAt
	s := &domain.AuthSession{
		ID:          r.nextID("sess"),
		UserID:      userID,
		SessionType: domain.SessionTypeAccess,
		TokenHash:   ns.TokenHash,
		IssuedAt:    time.Now().UTC(),
		ExpiresAt:   &exp,
		IP:          ns.IP,
		UserAgent:   ns.UserAgent,
	}
	r.sessions[ns.TokenHash] = s
	clone := *s
	return &clone
}

func (r *stubAuthRepo) CreateUserWithSession(_ context.Context, nu ports.NewUser, ns ports.NewSession) (*domain.User, *domain.AuthSession, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, nu.Email) && u.DeletedAt == nil {
			return nil, nil, domain.ErrConflict
		}
	}
	u := &domain.User{
		ID:           r.nextID("user"),
		Email:        nu.Email,
		Username:     nu.Username,
		DisplayName:  nu.DisplayName,
		PasswordHash: nu.PasswordHash,
		Status:       domain.UserStatusActive,
	}
	r.users[u.ID] = u
	r.roles[u.ID] = []string{domain.RoleUser}
	clone := *u
	return &clone, r.insertSession(u.ID, ns), nil
}

func (r *stubAuthRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubAuthRepo) RecordLogin(_ context.Context, userID string, ns ports.NewSession) (*domain.AuthSession, error) {
	now := time.Now().UTC()
	r.users[userID].LastLoginAt = &now
	return r.insertSession(userID, ns), nil
}

func (r *stubAuthRepo) RevokeSession(_ context.Context, tokenHash string) (string, bool, error) {
	s, ok := r.sessions[tokenHash]
	if !ok || s.RevokedAt != nil {
		return "", false, nil
	}
	now := time.Now().UTC()
	s.RevokedAt = &now
	return s.UserID, true, nil
}

func (r *stubAuthRepo) FindSessionByTokenHash(_ context.Context, tokenHash string) (*domain.AuthSession, *domain.User, error) {
	if r.findErr != nil {
		return nil, nil, r.findErr
	}
	s, ok := r.sessions[tokenHash]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	sc := *s
	uc := *r.users[s.UserID]
	return &sc, &uc, nil
}

func (r *stubAuthRepo) TouchSession(_ context.Context, sessionID string) error {
	r.touched = append(r.touched, sessionID)
	return nil
}

func (r *stubAuthRepo) HasRole(_ context.Context, userID, role string) (bool, error) {
	for _, g := range r.roles[userID] {
		if g == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAuthRepo) ListUsers(_ context.Context, limit int) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.users {
		if len(out) == limit {
			break
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// In-memory decision repository
// ---------------------------------------------------------------------------

type stubDecisionRepo struct {
	rows      map[string]*domain.Decision
	lastWrite ports.DecisionWrite
	lastList  ports.ListDecisionsFilter
	lastLimit int
	seq       int
}

func newStubDecisionRepo() *stubDecisionRepo {
	return &stubDecisionRepo{rows: make(map[string]*domain.Decision)}
}

func (r *stubDecisionRepo) owned(userID, id string) (*domain.Decision, error) {
	d, ok := r.rows[id]
	if !ok || d.UserID != userID || d.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (r *stubDecisionRepo) apply(d *domain.Decision, w ports.DecisionWrite) {
	in := w.Input
	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Context != nil {
		d.Context = in.Context
	}
	if in.Notes != nil {
		d.Notes = in.Notes
	}
	if in.Options != nil {
		d.Options = *in.Options
	}
	if in.Criteria != nil {
		d.Criteria = *in.Criteria
	}
	if in.Confidence != nil {
		d.Confidence = in.Confidence
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	d.QualityScore = w.QualityScore
	d.BiasSignals = w.BiasSignals
}

func (r *stubDecisionRepo) Create(_ context.Context, userID string, w ports.DecisionWrite) (*domain.Decision, error) {
	r.lastWrite = w
	r.seq++
	d := &domain.Decision{
		ID:       fmt.Sprintf("dec_%d", r.seq),
		UserID:   userID,
		Status:   domain.DecisionOpen,
		Options:  domain.ArrayValue(),
		Criteria: domain.ArrayValue(),
	}
	r.apply(d, w)
	r.rows[d.ID] = d
	clone := *d
	return &clone, nil
}

func (r *stubDecisionRepo) Update(_ context.Context, userID, id string, w ports.DecisionWrite) (*domain.Decision, error) {
	r.lastWrite = w
	d, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	r.apply(d, w)
	clone := *d
	return &clone, nil
}

func (r *stubDecisionRepo) SoftDelete(_ context.Context, userID, id string) error {
	d, err := r.owned(userID, id)
	if err != nil {
		return err
	}
	now := time.Now()
	d.DeletedAt = &now
	return nil
}

func (r *stubDecisionRepo) Get(_ context.Context, userID, id string) (*domain.Decision, error) {
	d, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	clone := *d
	return &clone, nil
}

func (r *stubDecisionRepo) List(_ context.Context, f ports.ListDecisionsFilter) ([]*domain.Decision, error) {
	r.lastList = f
	return nil, nil
}

func (r *stubDecisionRepo) Similar(_ context.Context, _ string, _ string, limit int) ([]domain.SimilarDecision, error) {
	r.lastLimit = limit
	return nil, nil
}
