package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/ports"
)

// AdminHandler serves the operator listings. Routes must be guarded by
// middleware.Session and middleware.RequireAdmin.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Users handles GET /admin/users.
//
// @Summary      List users (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Status: statusOK, Users: users})
}

// AuditLogs handles GET /admin/audit.
//
// @Summary      View audit logs (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Entries to return (1-500)"  default(100)
// @Success      200    {object}  auditLogsResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      403    {object}  ErrorResponse
// @Router       /admin/audit [get]
func (h *AdminHandler) AuditLogs(c echo.Context) error {
	var q auditQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	entries, err := h.service.ListAuditLogs(c.Request().Context(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditLogsResponse{Status: statusOK, AuditLogs: entries})
}
