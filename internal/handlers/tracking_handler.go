package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

type TrackingHandler struct {
	BaseHandler
	tracking *services.TrackingService
}

func NewTrackingHandler(tracking *services.TrackingService, logger utils.Logger) *TrackingHandler {
	return &TrackingHandler{
		BaseHandler: NewBaseHandler(logger),
		tracking:    tracking,
	}
}

func (h *TrackingHandler) CreateAssignment(c *gin.Context) {
	claims := ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req validator.AssignmentCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	assignment, err := h.tracking.CreateAssignment(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *TrackingHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.tracking.ListAssignments(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *TrackingHandler) ListAssignmentsByUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "user_id")
	if !ok {
		return
	}

	assignments, err := h.tracking.ListAssignmentsByUser(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *TrackingHandler) DeleteAssignment(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tracking.DeleteAssignment(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpsertProgress records or updates a user's status for a category.
func (h *TrackingHandler) UpsertProgress(c *gin.Context) {
	var req validator.ProgressUpsertRequest
	if !h.bindJSON(c, &req) {
		return
	}

	progress, err := h.tracking.UpsertProgress(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *TrackingHandler) ListProgressByUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "user_id")
	if !ok {
		return
	}

	progress, err := h.tracking.ListProgressByUser(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *TrackingHandler) RecordResult(c *gin.Context) {
	var req validator.TestResultCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.tracking.RecordResult(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *TrackingHandler) ListResultsByUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "user_id")
	if !ok {
		return
	}

	results, err := h.tracking.ListResultsByUser(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *TrackingHandler) ListResultsByTest(c *gin.Context) {
	id, ok := h.parseIDParam(c, "test_id")
	if !ok {
		return
	}

	results, err := h.tracking.ListResultsByTest(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
