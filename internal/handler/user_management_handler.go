package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// UserManagementHandler handles back-office account endpoints.
type UserManagementHandler struct {
	userService *service.UserService
}

// NewUserManagementHandler constructs a UserManagementHandler.
func NewUserManagementHandler(userService *service.UserService) *UserManagementHandler {
	return &UserManagementHandler{userService: userService}
}

// ListUsers handles GET /v1/admin/users
func (h *UserManagementHandler) ListUsers(c *gin.Context) {
	q := &service.ListUsersQuery{
		Search: c.Query("search"),
		Page:   1,
	}

	if v := c.Query("role"); v != "" && v != "all" {
		q.Role = models.UserRole(v)
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}

	result, err := h.userService.ListUsers(q)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidRole) {
			utils.Error(c, 400, "INVALID_ROLE", "Unknown role")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve users")
		return
	}

	utils.SuccessWithPagination(c, 200, "Users retrieved", result.Users, result.Page, result.Limit, result.TotalItems)
}

// GetUser handles GET /v1/admin/users/:id
func (h *UserManagementHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.Error(c, 404, "USER_NOT_FOUND", "User not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve user")
		return
	}

	utils.Success(c, 200, "User retrieved", user)
}

// CreateUser handles POST /v1/admin/users
func (h *UserManagementHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidRole) {
			utils.Error(c, 400, "INVALID_ROLE", "Unknown role")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create user")
		return
	}

	utils.Success(c, 201, "User created successfully", user)
}

// ToggleRole handles POST /v1/admin/users/:id/role-toggle
func (h *UserManagementHandler) ToggleRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := h.userService.ToggleRole(id)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.Error(c, 404, "USER_NOT_FOUND", "User not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to toggle role")
		return
	}

	utils.Success(c, 200, "Role updated", user)
}
