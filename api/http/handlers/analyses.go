package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/devadvisor/api/http/presenter"
	"github.com/artem13815/devadvisor/pkg/analysis"
)

// AnalysesHandler serves the stored analysis history.
type AnalysesHandler struct {
	uc analysis.UseCase
}

func NewAnalysesHandler(uc analysis.UseCase) *AnalysesHandler { return &AnalysesHandler{uc: uc} }

// Get returns a stored analysis by id.
// @Summary Get a stored analysis
// @Tags    analysis
// @Produce json
// @Param   id path string true "Analysis ID (UUID)"
// @Success 200 {object} analysis.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /analyses/{id} [get]
func (h *AnalysesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, analysis.ErrHistoryDisabled) {
			return presenter.Error(c, http.StatusServiceUnavailable, err.Error())
		}
		return presenter.Error(c, http.StatusNotFound, "analysis not found")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// List returns recent stored analyses, newest first.
// @Summary List stored analyses
// @Tags    analysis
// @Produce json
// @Param   limit  query int false "Page size (max 200)"
// @Param   offset query int false "Page offset"
// @Success 200 {array} analysis.Analysis
// @Failure 500 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /analyses [get]
func (h *AnalysesHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, analysis.ErrHistoryDisabled) {
			return presenter.Error(c, http.StatusServiceUnavailable, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list analyses")
	}
	return presenter.JSON(c, http.StatusOK, items)
}
