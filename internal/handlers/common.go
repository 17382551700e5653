package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// ErrorResponse is the error envelope for every non-2xx reply.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string) {
	utils.FromContext(c, h.logger).Error(msg, "error", err, "path", c.Request.URL.Path)
}

// parseIDParam reads a positive integer path parameter.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

var notFoundSentinels = []error{
	services.ErrCategoryNotFound,
	services.ErrArticleNotFound,
	services.ErrMediaNotFound,
	services.ErrTestNotFound,
	services.ErrQuestionNotFound,
	services.ErrOptionNotFound,
	services.ErrUserNotFound,
	services.ErrRoleNotFound,
	services.ErrGroupNotFound,
	services.ErrAssignmentNotFound,
	services.ErrResultNotFound,
}

// handleServiceError maps service errors onto HTTP statuses. Anything not
// recognized is a 500 and gets logged; recognized client errors are not.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	var refErr *services.ReferenceError
	var cycleErr *services.CycleError
	var bizErr *services.BusinessRuleError

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: verrs})
	case errors.As(err, &refErr):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: refErr.Error()})
	case errors.As(err, &bizErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bizErr.Error()})
	case errors.As(err, &cycleErr):
		h.LogError(c, err, "Corrupted category hierarchy")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: cycleErr.Error()})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case isNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func isNotFound(err error) bool {
	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// bindJSON decodes the body and reports malformed payloads as 400.
func (h *BaseHandler) bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
