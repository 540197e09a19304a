package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/ports"
)

// OutcomeHandler handles outcome logging against owned decisions.
type OutcomeHandler struct {
	service ports.OutcomeService
}

func NewOutcomeHandler(service ports.OutcomeService) *OutcomeHandler {
	return &OutcomeHandler{service: service}
}

// List handles GET /decisions/:decisionId/outcomes.
//
// @Summary      List outcomes for a decision
// @Tags         outcomes
// @Produce      json
// @Security     BearerAuth
// @Param        decisionId  path      string  true  "Decision id"  Format(uuid)
// @Success      200         {object}  outcomeListResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /decisions/{decisionId}/outcomes [get]
func (h *OutcomeHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	decisionID, err := pathID(c, "decisionId")
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), p.User.ID, decisionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, outcomeListResponse{Status: statusOK, Outcomes: items})
}

// Create handles POST /decisions/:decisionId/outcomes.
//
// @Summary      Record an outcome for a decision
// @Tags         outcomes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        decisionId  path      string          true  "Decision id"  Format(uuid)
// @Param        body        body      outcomeRequest  true  "Outcome"
// @Success      201         {object}  outcomeResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /decisions/{decisionId}/outcomes [post]
func (h *OutcomeHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	decisionID, err := pathID(c, "decisionId")
	if err != nil {
		return err
	}
	var req outcomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toOutcomeInput()
	if err != nil {
		return err
	}

	o, err := h.service.Create(c.Request().Context(), requestContext(c), p.User.ID, decisionID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, outcomeResponse{Status: statusOK, Outcome: o})
}

// Update handles PUT /outcomes/:outcomeId.
//
// @Summary      Update an outcome
// @Tags         outcomes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        outcomeId  path      string          true  "Outcome id"  Format(uuid)
// @Param        body       body      outcomeRequest  true  "Fields to change"
// @Success      200        {object}  outcomeResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /outcomes/{outcomeId} [put]
func (h *OutcomeHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	outcomeID, err := pathID(c, "outcomeId")
	if err != nil {
		return err
	}
	var req outcomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toOutcomeInput()
	if err != nil {
		return err
	}

	o, err := h.service.Update(c.Request().Context(), requestContext(c), p.User.ID, outcomeID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, outcomeResponse{Status: statusOK, Outcome: o})
}

// Delete handles DELETE /outcomes/:outcomeId.
//
// @Summary      Delete an outcome
// @Tags         outcomes
// @Produce      json
// @Security     BearerAuth
// @Param        outcomeId  path      string  true  "Outcome id"  Format(uuid)
// @Success      200        {object}  deletedResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /outcomes/{outcomeId} [delete]
func (h *OutcomeHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	outcomeID, err := pathID(c, "outcomeId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), requestContext(c), p.User.ID, outcomeID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Status: statusOK, Deleted: true})
}
