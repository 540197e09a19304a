package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

var (
	testNewUser = ports.NewUser{Email: "alice@example.com", Username: "alice", PasswordHash: "$2a$10$hash"}
	testSession = ports.NewSession{
		TokenHash: "digest",
		ExpiresAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		IP:        "203.0.113.7",
		UserAgent: "go-test",
	}
)

// ---------------------------------------------------------------------------
// Error translation
// ---------------------------------------------------------------------------

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want *domain.Error
	}{
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, domain.ErrConflict},
		{"fk", &pgconn.PgError{Code: "23503"}, domain.ErrFKViolation},
		{"bad uuid", &pgconn.PgError{Code: "22P02"}, domain.ErrInvalidInput},
		{"bad date", &pgconn.PgError{Code: "22007"}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.err, "op")
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %s, got %v", tc.want.Code, got)
			}
		})
	}

	var derr *domain.Error
	got := translate(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_email_key",
		Detail:         "Key (email)=(a@x.com) already exists.",
	}, "op")
	if !errors.As(got, &derr) || derr.Details["constraint"] != "users_email_key" {
		t.Fatalf("expected constraint in details, got %+v", derr)
	}
	if len(derr.Details) != 1 {
		t.Fatalf("store detail must not reach the client, got %v", derr.Details)
	}
	if !strings.Contains(derr.Error(), "a@x.com") {
		t.Fatalf("store detail must stay in the logged cause, got %q", derr.Error())
	}

	got = translate(&pgconn.PgError{Code: "22P02", Detail: `invalid input syntax for type uuid: "nope"`}, "op")
	if !errors.As(got, &derr) || derr.Details != nil {
		t.Fatalf("invalid input must carry no details, got %+v", derr)
	}

	plain := errors.New("connection reset")
	if got := translate(plain, "op"); !errors.Is(got, plain) {
		t.Fatalf("unmapped errors must wrap the cause, got %v", got)
	}
	if translate(nil, "op") != nil {
		t.Fatal("nil must stay nil")
	}
}

// ---------------------------------------------------------------------------
// Auth repository
// ---------------------------------------------------------------------------

func TestAuthRepository_CreateUserWithSession_Commits(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").WithArgs(testNewUser.Email).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(testNewUser.Email, "alice", nil, testNewUser.PasswordHash).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "display_name", "status", "created_at", "updated_at"}).
			AddRow("u1", testNewUser.Email, "alice", nil, "active", now, now))
	mock.ExpectExec("INSERT INTO user_roles").WithArgs("u1", domain.RoleUser).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO auth_sessions").
		WithArgs("u1", "digest", testSession.ExpiresAt, "203.0.113.7", "go-test").
		WillReturnRows(sqlmock.NewRows([]string{"id", "issued_at", "expires_at"}).AddRow("s1", now, testSession.ExpiresAt))
	mock.ExpectCommit()

	user, session, err := repo.CreateUserWithSession(context.Background(), testNewUser, testSession)
	if err != nil {
		t.Fatalf("CreateUserWithSession: %v", err)
	}
	if user.ID != "u1" || user.DisplayName != "" {
		t.Errorf("unexpected user: %+v", user)
	}
	if session.ID != "s1" || session.ExpiresAt == nil || !session.ExpiresAt.Equal(testSession.ExpiresAt) {
		t.Errorf("unexpected session: %+v", session)
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_CreateUserWithSession_RollsBackOnRoleGrantFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "display_name", "status", "created_at", "updated_at"}).
			AddRow("u1", testNewUser.Email, "alice", nil, "active", now, now))
	mock.ExpectExec("INSERT INTO user_roles").WillReturnError(errors.New("roles table locked"))
	mock.ExpectRollback()

	if _, _, err := repo.CreateUserWithSession(context.Background(), testNewUser, testSession); err == nil {
		t.Fatal("expected error")
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_CreateUserWithSession_RollsBackOnSessionFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "display_name", "status", "created_at", "updated_at"}).
			AddRow("u1", testNewUser.Email, "alice", nil, "active", now, now))
	mock.ExpectExec("INSERT INTO user_roles").WithArgs("u1", domain.RoleUser).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO auth_sessions").WillReturnError(errors.New("sessions table locked"))
	mock.ExpectRollback()

	user, session, err := repo.CreateUserWithSession(context.Background(), testNewUser, testSession)
	if err == nil {
		t.Fatal("expected error")
	}
	if user != nil || session != nil {
		t.Fatalf("no user or session may escape a rolled back signup, got %+v %+v", user, session)
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_CreateUserWithSession_DuplicateEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("existing"))
	mock.ExpectRollback()

	_, _, err := repo.CreateUserWithSession(context.Background(), testNewUser, testSession)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_CreateUserWithSession_UniqueRaceIsConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE email").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_live_key"})
	mock.ExpectRollback()

	_, _, err := repo.CreateUserWithSession(context.Background(), testNewUser, testSession)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_RevokeSession_Idempotent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)

	mock.ExpectQuery("UPDATE auth_sessions").WithArgs("digest").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
	mock.ExpectQuery("UPDATE auth_sessions").WithArgs("digest").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	userID, revoked, err := repo.RevokeSession(context.Background(), "digest")
	if err != nil || !revoked || userID != "user-1" {
		t.Fatalf("first revoke: user=%q revoked=%v err=%v", userID, revoked, err)
	}
	userID, revoked, err = repo.RevokeSession(context.Background(), "digest")
	if err != nil || revoked || userID != "" {
		t.Fatalf("second revoke: user=%q revoked=%v err=%v", userID, revoked, err)
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_FindSessionByTokenHash_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)

	mock.ExpectQuery("FROM auth_sessions s").WithArgs("digest").WillReturnError(sql.ErrNoRows)

	if _, _, err := repo.FindSessionByTokenHash(context.Background(), "digest"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAuthRepository_HasRole(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuthRepository(db)

	mock.ExpectQuery("FROM user_roles ur").WithArgs("u1", "admin").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("FROM user_roles ur").WithArgs("u2", "admin").WillReturnError(sql.ErrNoRows)

	if ok, err := repo.HasRole(context.Background(), "u1", "admin"); err != nil || !ok {
		t.Fatalf("expected admin, got %v %v", ok, err)
	}
	if ok, err := repo.HasRole(context.Background(), "u2", "admin"); err != nil || ok {
		t.Fatalf("expected no admin, got %v %v", ok, err)
	}
	expectationsMet(t, mock)
}

// ---------------------------------------------------------------------------
// Decision repository
// ---------------------------------------------------------------------------

func TestDecisionRepository_Update_ForeignDecisionTouchesNothing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDecisionRepository(db)
	title := "Hijack"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM decisions").WithArgs("d1", "intruder").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), "intruder", "d1", ports.DecisionWrite{Input: ports.DecisionInput{Title: &title}})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestDecisionRepository_Update_ConcurrentDeleteIsNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDecisionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM decisions").WithArgs("d1", "u1").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("d1"))
	mock.ExpectQuery("UPDATE decisions AS d").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), "u1", "d1", ports.DecisionWrite{QualityScore: 30})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestDecisionRepository_SoftDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDecisionRepository(db)

	mock.ExpectExec("UPDATE decisions").WithArgs("d1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE decisions").WithArgs("d1", "u1").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SoftDelete(context.Background(), "u1", "d1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.SoftDelete(context.Background(), "u1", "d1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
	expectationsMet(t, mock)
}

var decisionRowColumns = []string{
	"id", "user_id", "title", "context", "decision_date", "status",
	"options", "criteria", "expected_outcome", "selected_option", "confidence", "risk_level",
	"importance", "time_horizon", "notes", "quality_score", "bias_signals", "created_at", "updated_at", "outcomes",
}

func TestDecisionRepository_Get_DecodesRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDecisionRepository(db)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM decisions d").WithArgs("d1", "u1").WillReturnRows(
		sqlmock.NewRows(decisionRowColumns).AddRow(
			"d1", "u1", "Pick a vendor", "Need a provider", day, "open",
			[]byte(`["A","B"]`), []byte(`[]`), nil, nil, int64(95), "medium",
			nil, nil, nil, int64(60), []byte(`[{"type":"overconfidence","evidence":"confidence=95","detectedAt":"2026-03-01T09:00:00Z"}]`), day, day,
			[]byte(`[{"id":"o1","decisionId":"d1","userId":"u1","outcomeDate":"2026-03-05T00:00:00+00:00","status":"final","summary":null,"metrics":{"roi":1.5},"satisfaction":4,"lessonsLearned":null,"createdAt":"2026-03-05T10:00:00.123+00:00","updatedAt":"2026-03-05T10:00:00.123+00:00"}]`),
		))

	d, err := repo.Get(context.Background(), "u1", "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.Options.Len() != 2 || d.Confidence == nil || *d.Confidence != 95 {
		t.Errorf("unexpected decision fields: %+v", d)
	}
	if d.SelectedOption.Kind != domain.JSONNull {
		t.Errorf("expected null selected option, got %v", d.SelectedOption.Kind)
	}
	if len(d.BiasSignals) != 1 || d.BiasSignals[0].Type != domain.BiasOverconfidence {
		t.Errorf("unexpected bias signals: %+v", d.BiasSignals)
	}
	if len(d.Outcomes) != 1 || d.Outcomes[0].Status != domain.OutcomeFinal || *d.Outcomes[0].Satisfaction != 4 {
		t.Errorf("unexpected outcomes: %+v", d.Outcomes)
	}
	expectationsMet(t, mock)
}

func TestDecisionRepository_List_BuildsFilters(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDecisionRepository(db)

	mock.ExpectQuery(`d\.status = \$2 AND \(d\.title ILIKE \$3`).
		WithArgs("u1", "open", "%vendor%", 50, 0).
		WillReturnRows(sqlmock.NewRows(decisionRowColumns))

	items, err := repo.List(context.Background(), ports.ListDecisionsFilter{UserID: "u1", Status: "open", Query: "vendor", Limit: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", items)
	}
	expectationsMet(t, mock)
}

func TestDecisionRepository_Similar(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDecisionRepository(db)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("AS similarity").WithArgs("u1", "%vendor%", 10).WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "context", "decision_date", "status", "quality_score", "bias_signals", "similarity"}).
			AddRow("d1", "Vendor pick", nil, day, "open", int64(40), []byte(`[]`), 1.5).
			AddRow("d2", "Other", "about vendor", day, "closed", int64(30), []byte(`[]`), 0.6))

	hits, err := repo.Similar(context.Background(), "u1", "vendor", 10)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if len(hits) != 2 || hits[0].Similarity != 1.5 || hits[1].Context == nil {
		t.Errorf("unexpected hits: %+v", hits)
	}
	expectationsMet(t, mock)
}

// ---------------------------------------------------------------------------
// Outcome repository
// ---------------------------------------------------------------------------

func TestOutcomeRepository_Create_RequiresOwnedDecision(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOutcomeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM decisions").WithArgs("d1", "u2").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	if _, err := repo.Create(context.Background(), "u2", "d1", ports.OutcomeInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestOutcomeRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewOutcomeRepository(db)

	mock.ExpectQuery("DELETE FROM outcomes").WithArgs("o1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"decision_id"}).AddRow("d1"))
	mock.ExpectQuery("DELETE FROM outcomes").WithArgs("o1", "u1").WillReturnError(sql.ErrNoRows)

	decisionID, err := repo.Delete(context.Background(), "u1", "o1")
	if err != nil || decisionID != "d1" {
		t.Fatalf("expected d1, got %q %v", decisionID, err)
	}
	if _, err := repo.Delete(context.Background(), "u1", "o1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

// ---------------------------------------------------------------------------
// Audit repository
// ---------------------------------------------------------------------------

func TestAuditRepository_Append(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAuditRepository(db)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("u1", nil, domain.ActionLogout, "session", nil, "security", "User logged out.", nil, nil, "req-1", `{"revoked":true}`, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), &domain.AuditEntry{
		UserID:     "u1",
		Action:     domain.ActionLogout,
		EntityType: "session",
		Severity:   domain.SeveritySecurity,
		Message:    "User logged out.",
		RequestID:  "req-1",
		Metadata:   map[string]any{"revoked": true},
		CreatedAt:  created,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	expectationsMet(t, mock)
}
