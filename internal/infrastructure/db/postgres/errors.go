package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/decisionreplay/backend/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
	codeInvalidDatetime     = "22007"
	codeDatetimeOverflow    = "22008"
)

// translate maps Postgres constraint and encoding failures onto the domain
// error type. Anything else is wrapped with op and returned as is.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	var derr *domain.Error
	if errors.As(err, &derr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Detail echoes row values, so it stays in the cause for the logs.
		cause := fmt.Errorf("%s: %s: %w", op, pgErr.Detail, err)
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.ErrConflict.WithDetails(constraintDetails(pgErr)).Wrap(cause)
		case codeForeignKeyViolation:
			return domain.ErrFKViolation.WithDetails(constraintDetails(pgErr)).Wrap(cause)
		case codeInvalidText, codeInvalidDatetime, codeDatetimeOverflow:
			return domain.ErrInvalidInput.Wrap(cause)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func constraintDetails(pgErr *pgconn.PgError) map[string]any {
	if pgErr.ConstraintName == "" {
		return nil
	}
	return map[string]any{"constraint": pgErr.ConstraintName}
}
