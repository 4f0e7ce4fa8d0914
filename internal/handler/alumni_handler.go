package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolah-dev/school-site-api/internal/models"
	"github.com/sekolah-dev/school-site-api/internal/service"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
	"github.com/sekolah-dev/school-site-api/pkg/response"
)

// AlumniHandler handles alumni endpoints.
type AlumniHandler struct {
	service *service.AlumniService
}

// NewAlumniHandler constructs an alumni handler.
func NewAlumniHandler(svc *service.AlumniService) *AlumniHandler {
	return &AlumniHandler{service: svc}
}

// List godoc
// @Summary List alumni
// @Tags Alumni
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /alumni [get]
func (h *AlumniHandler) List(c *gin.Context) {
	alumni, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, alumni)
}

// Create godoc
// @Summary Create alumni profile
// @Tags Alumni
// @Accept json
// @Produce json
// @Param payload body service.CreateAlumniRequest true "Alumni payload"
// @Success 201 {object} response.Envelope
// @Router /alumni [post]
func (h *AlumniHandler) Create(c *gin.Context) {
	var req service.CreateAlumniRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	alumni, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, alumni)
}

// Update godoc
// @Summary Partially update alumni profile
// @Tags Alumni
// @Accept json
// @Produce json
// @Param id path int true "Alumni ID"
// @Param payload body models.AlumniPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /alumni/{id} [put]
func (h *AlumniHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.AlumniPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	alumni, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, alumni)
}

// Delete godoc
// @Summary Delete alumni profile
// @Tags Alumni
// @Produce json
// @Param id path int true "Alumni ID"
// @Success 200 {object} response.Envelope
// @Router /alumni/{id} [delete]
func (h *AlumniHandler) Delete(c *gin.Context) {
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
