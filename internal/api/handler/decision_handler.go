package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/ports"
)

// DecisionHandler handles HTTP requests for decision journaling.
type DecisionHandler struct {
	service ports.DecisionService
}

func NewDecisionHandler(service ports.DecisionService) *DecisionHandler {
	return &DecisionHandler{service: service}
}

// List handles GET /decisions.
//
// @Summary      List decisions
// @Tags         decisions
// @Produce      json
// @Security     BearerAuth
// @Param        q       query     string  false  "Text filter over title, context and notes"
// @Param        status  query     string  false  "Status filter"  Enums(open, closed, archived)
// @Param        limit   query     int     false  "Page size (1-200)"  default(50)
// @Param        offset  query     int     false  "Offset (0-10000)"   default(0)
// @Success      200     {object}  decisionListResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      401     {object}  ErrorResponse
// @Router       /decisions [get]
func (h *DecisionHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var q listDecisionsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), ports.ListDecisionsFilter{
		UserID: p.User.ID,
		Status: q.Status,
		Query:  q.Q,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decisionListResponse{Status: statusOK, Decisions: items})
}

// Create handles POST /decisions.
//
// @Summary      Create a decision
// @Description  The quality score and bias signals are derived from the payload.
// @Tags         decisions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDecisionRequest  true  "Decision"
// @Success      201   {object}  decisionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /decisions [post]
func (h *DecisionHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toDecisionInput(req.Title)
	if err != nil {
		return err
	}

	d, err := h.service.Create(c.Request().Context(), requestContext(c), p.User.ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, decisionResponse{Status: statusOK, Decision: d})
}

// Get handles GET /decisions/:decisionId.
//
// @Summary      Get a decision with its outcomes
// @Tags         decisions
// @Produce      json
// @Security     BearerAuth
// @Param        decisionId  path      string  true  "Decision id"  Format(uuid)
// @Success      200         {object}  decisionResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /decisions/{decisionId} [get]
func (h *DecisionHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "decisionId")
	if err != nil {
		return err
	}

	d, err := h.service.Get(c.Request().Context(), p.User.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decisionResponse{Status: statusOK, Decision: d})
}

// Update handles PUT /decisions/:decisionId. Omitted fields keep their
// stored value.
//
// @Summary      Update a decision
// @Tags         decisions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        decisionId  path      string                 true  "Decision id"  Format(uuid)
// @Param        body        body      updateDecisionRequest  true  "Fields to change"
// @Success      200         {object}  decisionResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /decisions/{decisionId} [put]
func (h *DecisionHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "decisionId")
	if err != nil {
		return err
	}
	var req updateDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toDecisionInput(req.Title)
	if err != nil {
		return err
	}

	d, err := h.service.Update(c.Request().Context(), requestContext(c), p.User.ID, id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decisionResponse{Status: statusOK, Decision: d})
}

// Delete handles DELETE /decisions/:decisionId (soft delete).
//
// @Summary      Delete a decision
// @Tags         decisions
// @Produce      json
// @Security     BearerAuth
// @Param        decisionId  path      string  true  "Decision id"  Format(uuid)
// @Success      200         {object}  deletedResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Router       /decisions/{decisionId} [delete]
func (h *DecisionHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "decisionId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), requestContext(c), p.User.ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Status: statusOK, Deleted: true})
}
