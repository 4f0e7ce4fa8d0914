package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolah-dev/school-site-api/internal/models"
	"github.com/sekolah-dev/school-site-api/internal/service"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
	"github.com/sekolah-dev/school-site-api/pkg/response"
)

// AchievementHandler handles achievement endpoints.
type AchievementHandler struct {
	service *service.AchievementService
}

// NewAchievementHandler constructs an achievement handler.
func NewAchievementHandler(svc *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: svc}
}

// List godoc
// @Summary List achievements
// @Tags Achievements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /achievements [get]
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, achievements)
}

// Create godoc
// @Summary Create achievement
// @Tags Achievements
// @Accept json
// @Produce json
// @Param payload body service.CreateAchievementRequest true "Achievement payload"
// @Success 201 {object} response.Envelope
// @Router /achievements [post]
func (h *AchievementHandler) Create(c *gin.Context) {
	var req service.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	achievement, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, achievement)
}

// Update godoc
// @Summary Partially update achievement
// @Tags Achievements
// @Accept json
// @Produce json
// @Param id path int true "Achievement ID"
// @Param payload body models.AchievementPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /achievements/{id} [put]
func (h *AchievementHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.AchievementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	achievement, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, achievement)
}

// Delete godoc
// @Summary Delete achievement
// @Tags Achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} response.Envelope
// @Router /achievements/{id} [delete]
func (h *AchievementHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"success": deleted})
}
