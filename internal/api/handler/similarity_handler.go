package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/ports"
)

// similarityMode names the ranking strategy reported to clients.
const similarityMode = "text"

type SimilarityHandler struct {
	decisions ports.DecisionService
}

func NewSimilarityHandler(decisions ports.DecisionService) *SimilarityHandler {
	return &SimilarityHandler{decisions: decisions}
}

// Search handles POST /similarity/search.
//
// @Summary      Search for similar decisions
// @Description  Ranks the caller's decisions by text similarity to the query.
// @Tags         similarity
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      similarityRequest  true  "Query"
// @Success      200   {object}  similarityResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /similarity/search [post]
func (h *SimilarityHandler) Search(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req similarityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}

	hits, err := h.decisions.Similar(c.Request().Context(), p.User.ID, req.Query, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, similarityResponse{Status: statusOK, Results: hits, Mode: similarityMode})
}
