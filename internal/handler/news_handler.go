package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolah-dev/school-site-api/internal/models"
	"github.com/sekolah-dev/school-site-api/internal/service"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
	"github.com/sekolah-dev/school-site-api/pkg/response"
)

// NewsHandler handles news article endpoints.
type NewsHandler struct {
	service *service.NewsService
}

// NewNewsHandler constructs a news handler.
func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{service: svc}
}

// List godoc
// @Summary List all news articles
// @Tags News
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	articles, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, articles)
}

// ListPublished godoc
// @Summary List published news articles
// @Tags News
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /news/published [get]
func (h *NewsHandler) ListPublished(c *gin.Context) {
	articles, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, articles)
}

// Create godoc
// @Summary Create news article
// @Tags News
// @Accept json
// @Produce json
// @Param payload body service.CreateNewsArticleRequest true "Article payload"
// @Success 201 {object} response.Envelope
// @Router /news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var req service.CreateNewsArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Partially update news article
// @Tags News
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param payload body models.NewsArticlePatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var patch models.NewsArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, article)
}

// Delete godoc
// @Summary Delete news article
// @Tags News
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} response.Envelope
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
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
