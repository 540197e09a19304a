package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/ports"
)

type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Rollups handles GET /analytics/rollups.
//
// @Summary      Rollups for decisions, outcomes and bias flags
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "ISO date (inclusive)"
// @Param        to    query     string  false  "ISO date (inclusive)"
// @Success      200   {object}  rollupsResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /analytics/rollups [get]
func (h *AnalyticsHandler) Rollups(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var q rollupsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	var rng ports.RollupRange
	var issues []Issue
	if q.From != "" {
		from, err := parseDate(q.From)
		if err != nil {
			issues = append(issues, Issue{Path: "from", Code: "invalid_date", Message: "from must be an ISO date"})
		}
		rng.From = &from
	}
	if q.To != "" {
		to, err := parseDate(q.To)
		if err != nil {
			issues = append(issues, Issue{Path: "to", Code: "invalid_date", Message: "to must be an ISO date"})
		}
		rng.To = &to
	}
	if len(issues) > 0 {
		return validationError(issues...)
	}

	rollups, err := h.service.Rollups(c.Request().Context(), p.User.ID, rng)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rollupsResponse{Status: statusOK, Rollups: rollups})
}

// Insights handles GET /analytics/decisions/:decisionId/insights.
//
// @Summary      Quality score, bias flags and hints for a decision
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        decisionId  path      string  true  "Decision id"  Format(uuid)
// @Success      200         {object}  insightsResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /analytics/decisions/{decisionId}/insights [get]
func (h *AnalyticsHandler) Insights(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "decisionId")
	if err != nil {
		return err
	}

	insights, err := h.service.Insights(c.Request().Context(), p.User.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insightsResponse{Status: statusOK, Insights: insights})
}
