package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

type UserHandler struct {
	BaseHandler
	users *services.UserService
}

func NewUserHandler(users *services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		users:       users,
	}
}

// Login godoc
// @Summary Exchange credentials for an access token
// @Accept json
// @Produce json
// @Success 200 {object} services.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req validator.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated caller.
func (h *UserHandler) Me(c *gin.Context) {
	claims := ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req validator.UserCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.UserUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ===== GROUPS =====

type groupCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *UserHandler) CreateGroup(c *gin.Context) {
	var req groupCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	group, err := h.users.CreateGroup(c.Request.Context(), req.Name)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *UserHandler) ListGroups(c *gin.Context) {
	groups, err := h.users.ListGroups(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *UserHandler) AddGroupMember(c *gin.Context) {
	groupID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := h.parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.users.AddGroupMember(c.Request.Context(), groupID, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) RemoveGroupMember(c *gin.Context) {
	groupID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := h.parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.users.RemoveGroupMember(c.Request.Context(), groupID, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListGroupMembers(c *gin.Context) {
	groupID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.users.ListGroupMembers(c.Request.Context(), groupID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
