package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/devadvisor/api/http/presenter"
	"github.com/artem13815/devadvisor/pkg/analysis"
)

type ProfileHandler struct {
	uc analysis.UseCase
}

func NewProfileHandler(uc analysis.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

// Analyze fetches activity for the requested platforms and returns ranked
// learning/practice recommendations.
// @Summary Analyze a developer profile
// @Description Accepts up to three platform usernames plus a goal and domain, aggregates activity and synthesizes recommendations. Failed platforms are reported inside activity_data, never as a request failure.
// @Tags    analysis
// @Accept  json
// @Produce json
// @Param   input body analysis.ProfileRequest true "Platform usernames plus goal and domain"
// @Success 200 {object} analysis.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile/analyze [post]
func (h *ProfileHandler) Analyze(c *fiber.Ctx) error {
	var req analysis.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	out, err := h.uc.Analyze(c.Context(), req)
	if err != nil {
		if errors.Is(err, analysis.ErrNoPlatforms) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "analysis failed")
	}
	return presenter.JSON(c, http.StatusOK, out)
}
