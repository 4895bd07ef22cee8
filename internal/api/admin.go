package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsersHandler returns a paginated user listing for administrators
func ListUsersHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
		users, total, err := svc.List(page, pageSize)
		if err != nil {
			respondError(c, err, "Failed to fetch users")
			return
		}
		respondOK(c, http.StatusOK, "Users fetched successfully", gin.H{
			"users": users,
			"total": total,
			"page":  page,
		})
	}
}

// GetUserHandler returns one user
func GetUserHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("user id must be numeric"), "Invalid request")
			return
		}
		user, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch user")
			return
		}
		respondOK(c, http.StatusOK, "User fetched successfully", user)
	}
}

// ListOrganizationUsersHandler returns the users of one organization.
// The policy layer has already verified the caller administers it.
func ListOrganizationUsersHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, err := strconv.ParseUint(c.Param("organizationId"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("organizationId must be numeric"), "Invalid request")
			return
		}
		users, err := svc.FindByOrganizationID(uint(orgID))
		if err != nil {
			respondError(c, err, "Failed to fetch users")
			return
		}
		respondOK(c, http.StatusOK, "Users fetched successfully", users)
	}
}

// setActiveHandler is shared by the activate and deactivate endpoints
func setActiveHandler(svc *service.UserService, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("user id must be numeric"), "Invalid request")
			return
		}
		user, err := svc.SetActive(uint(id), active)
		if err != nil {
			respondError(c, err, "Failed to update user")
			return
		}
		message := "User activated successfully"
		if !active {
			message = "User deactivated successfully"
		}
		respondOK(c, http.StatusOK, message, user)
	}
}

// ActivateUserHandler re-enables a user account
func ActivateUserHandler(svc *service.UserService) gin.HandlerFunc {
	return setActiveHandler(svc, true)
}

// DeactivateUserHandler suspends a user account
func DeactivateUserHandler(svc *service.UserService) gin.HandlerFunc {
	return setActiveHandler(svc, false)
}

// DeleteUserHandler removes a user account
func DeleteUserHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("user id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete user")
			return
		}
		respondOK(c, http.StatusOK, "User deleted successfully", nil)
	}
}
