package middleware

import (
	"net/http"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Context keys set by the middleware chain
const (
	CtxUser        = "currentUser"
	CtxRequiredOrg = "requiredOrganizationID"
)

// JWTAuthMiddleware validates bearer tokens and attaches the authenticated
// user to the request context. The token's email claim must resolve to an
// existing user row; a deleted account invalidates outstanding tokens.
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing or invalid Authorization header",
			})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}
		var user domain.User
		if err := db.Where("email = ?", claims.Email).First(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email": claims.Email,
				"error": err.Error(),
			}).Warn("Token resolved to unknown user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not found",
			})
			return
		}
		c.Set(CtxUser, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by JWTAuthMiddleware
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
