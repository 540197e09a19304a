package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

// AuthRepository persists users, role grants and sessions.
type AuthRepository struct {
	db *sql.DB
}

var _ ports.AuthRepository = (*AuthRepository)(nil)

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

const insertSessionSQL = `
	INSERT INTO auth_sessions (user_id, session_type, token_hash, expires_at, ip, user_agent, metadata)
	VALUES ($1, 'access', $2, $3, $4, $5, '{}'::jsonb)
	RETURNING id, issued_at, expires_at`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertSession(ctx context.Context, q queryRower, userID string, ns ports.NewSession) (*domain.AuthSession, error) {
	s := &domain.AuthSession{
		UserID:      userID,
		SessionType: domain.SessionTypeAccess,
		TokenHash:   ns.TokenHash,
		IP:          ns.IP,
		UserAgent:   ns.UserAgent,
		Metadata:    map[string]any{},
	}
	var expires sql.NullTime
	err := q.QueryRowContext(ctx, insertSessionSQL,
		userID, ns.TokenHash, ns.ExpiresAt, nullIfEmpty(ns.IP), nullIfEmpty(ns.UserAgent),
	).Scan(&s.ID, &s.IssuedAt, &expires)
	if err != nil {
		return nil, translate(err, "insert session")
	}
	s.ExpiresAt = timePtr(expires)
	return s, nil
}

func (r *AuthRepository) CreateUserWithSession(ctx context.Context, nu ports.NewUser, ns ports.NewSession) (*domain.User, *domain.AuthSession, error) {
	var (
		user    *domain.User
		session *domain.AuthSession
	)
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var existing string
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL LIMIT 1`, nu.Email,
		).Scan(&existing)
		switch {
		case err == nil:
			return domain.ErrConflict.WithMessage("Email is already registered.")
		case !errors.Is(err, sql.ErrNoRows):
			return translate(err, "check email")
		}

		u := &domain.User{}
		var username, displayName sql.NullString
		err = tx.QueryRowContext(ctx, `
			INSERT INTO users (email, username, display_name, password_hash, status, email_verified_at)
			VALUES ($1, $2, $3, $4, 'active', NOW())
			RETURNING id, email, username, display_name, status, created_at, updated_at`,
			nu.Email, nullIfEmpty(nu.Username), nullIfEmpty(nu.DisplayName), nu.PasswordHash,
		).Scan(&u.ID, &u.Email, &username, &displayName, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return translate(err, "insert user")
		}
		u.Username = username.String
		u.DisplayName = displayName.String

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_roles (user_id, role_id, granted_by)
			SELECT $1, r.id, $1 FROM roles r WHERE r.name = $2
			ON CONFLICT DO NOTHING`,
			u.ID, domain.RoleUser,
		); err != nil {
			return translate(err, "grant default role")
		}

		s, err := insertSession(ctx, tx, u.ID, ns)
		if err != nil {
			return err
		}

		user, session = u, s
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

const userColumns = `id, email, username, display_name, password_hash, status, last_login_at, deleted_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var username, displayName, hash sql.NullString
	var lastLogin, deleted sql.NullTime
	if err := row.Scan(&u.ID, &u.Email, &username, &displayName, &hash, &u.Status, &lastLogin, &deleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Username = username.String
	u.DisplayName = displayName.String
	u.PasswordHash = hash.String
	u.LastLoginAt = timePtr(lastLogin)
	u.DeletedAt = timePtr(deleted)
	return u, nil
}

func (r *AuthRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound.WithMessage("User not found.")
	}
	if err != nil {
		return nil, translate(err, "find user by email")
	}
	return u, nil
}

func (r *AuthRepository) RecordLogin(ctx context.Context, userID string, ns ports.NewSession) (*domain.AuthSession, error) {
	var session *domain.AuthSession
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, userID); err != nil {
			return translate(err, "stamp last login")
		}
		s, err := insertSession(ctx, tx, userID, ns)
		if err != nil {
			return err
		}
		session = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *AuthRepository) RevokeSession(ctx context.Context, tokenHash string) (string, bool, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, `
		UPDATE auth_sessions
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
		RETURNING user_id`, tokenHash).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, translate(err, "revoke session")
	}
	return userID, true, nil
}

// FindSessionByTokenHash loads the session and its owner without filtering on
// validity; the caller evaluates expiry and status against its own clock.
func (r *AuthRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.AuthSession, *domain.User, error) {
	s := &domain.AuthSession{TokenHash: tokenHash}
	u := &domain.User{}
	var (
		expires, revoked, lastUsed, deleted sql.NullTime
		ip, ua, username, displayName       sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT s.id, s.user_id, s.session_type, s.issued_at, s.expires_at, s.revoked_at, s.last_used_at,
		       s.ip, s.user_agent,
		       u.email, u.username, u.display_name, u.status, u.deleted_at
		FROM auth_sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token_hash = $1
		LIMIT 1`, tokenHash,
	).Scan(&s.ID, &s.UserID, &s.SessionType, &s.IssuedAt, &expires, &revoked, &lastUsed,
		&ip, &ua,
		&u.Email, &username, &displayName, &u.Status, &deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, domain.ErrNotFound.WithMessage("Session not found.")
	}
	if err != nil {
		return nil, nil, translate(err, "find session")
	}

	s.ExpiresAt = timePtr(expires)
	s.RevokedAt = timePtr(revoked)
	s.LastUsedAt = timePtr(lastUsed)
	s.IP = ip.String
	s.UserAgent = ua.String

	u.ID = s.UserID
	u.Username = username.String
	u.DisplayName = displayName.String
	u.DeletedAt = timePtr(deleted)
	return s, u, nil
}

func (r *AuthRepository) TouchSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE auth_sessions SET last_used_at = NOW() WHERE id = $1`, sessionID); err != nil {
		return translate(err, "touch session")
	}
	return nil
}

func (r *AuthRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1 AND r.name = $2
		LIMIT 1`, userID, role,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, "check role")
	}
	return true, nil
}

func (r *AuthRepository) ListUsers(ctx context.Context, limit int) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, translate(err, "list users")
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translate(err, "scan user")
		}
		u.PasswordHash = ""
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, "list users")
	}
	return users, nil
}
