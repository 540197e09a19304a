package service

import (
	"context"

	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/internal/core/ports"
)

const (
	maxAdminUsers     = 200
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

// AdminService implements ports.AdminService. Callers are expected to have
// passed AuthService.AuthorizeAdmin.
type AdminService struct {
	users ports.AuthRepository
	audit ports.AuditReader
}

var _ ports.AdminService = (*AdminService)(nil)

func NewAdminService(users ports.AuthRepository, audit ports.AuditReader) *AdminService {
	return &AdminService{users: users, audit: audit}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.ListUsers(ctx, maxAdminUsers)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

func (s *AdminService) ListAuditLogs(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	entries, err := s.audit.ListRecent(ctx, clampLimit(limit, defaultAuditLimit, maxAuditLimit))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.AuditEntry{}
	}
	return entries, nil
}
