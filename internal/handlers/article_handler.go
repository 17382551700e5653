package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

type ArticleHandler struct {
	BaseHandler
	content *services.ContentService
}

func NewArticleHandler(content *services.ContentService, logger utils.Logger) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler: NewBaseHandler(logger),
		content:     content,
	}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req validator.ArticleCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	article, err := h.content.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Get returns the article with its media in sort order.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	article, err := h.content.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.content.ListArticles(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	articles, err := h.content.ListArticlesByCategory(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.ArticleUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	article, err := h.content.UpdateArticle(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.content.DeleteArticle(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) CreateMedia(c *gin.Context) {
	var req validator.MediaCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	media, err := h.content.CreateMedia(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *ArticleHandler) ListMedia(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	media, err := h.content.ListMediaByArticle(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *ArticleHandler) DeleteMedia(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.content.DeleteMedia(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
