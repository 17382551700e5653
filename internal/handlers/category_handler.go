package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

type CategoryHandler struct {
	BaseHandler
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService, logger utils.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler: NewBaseHandler(logger),
		categories:  categories,
	}
}

// GetTree godoc
// @Summary Get the category tree
// @Description Returns all categories as a nested forest, children ordered as stored
// @Produce json
// @Success 200 {array} models.CategoryTreeNode
// @Router /categories/tree [get]
func (h *CategoryHandler) GetTree(c *gin.Context) {
	tree, err := h.categories.GetTree(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req validator.CategoryCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	category, err := h.categories.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.CategoryUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	category, err := h.categories.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
