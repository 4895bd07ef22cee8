package middleware

import (
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Policy selects which role/ownership check Authorize applies
type Policy int

const (
	// PolicySuperAdminOnly passes only for the top-level admin role
	PolicySuperAdminOnly Policy = iota
	// PolicyOrganizationAdmin requires the :organizationId path param to
	// match the caller's organization (super admin bypasses the check)
	PolicyOrganizationAdmin
	// PolicyShopAdmin requires the :shopId path param to match the caller's
	// shop; organization admins pass with a deferred organization check
	PolicyShopAdmin
)

// Decision carries information a handler must still act on after a guard
// has passed
type Decision struct {
	// RequiredOrganizationID is set when an organization admin was allowed
	// through a shop-scoped route; the handler must verify the shop belongs
	// to this organization before acting.
	RequiredOrganizationID *uint
}

// Authorize is the single role-based access check. All guard middlewares
// funnel through it, so the "no user → deny" handling lives in one place.
// Guards fail closed: missing or inconsistent data denies access.
func Authorize(user *domain.User, policy Policy, params map[string]string) (Decision, error) {
	if user == nil {
		return Decision{}, apperr.Forbidden("User not authenticated")
	}

	switch policy {
	case PolicySuperAdminOnly:
		if user.Role != domain.RoleSuperAdmin {
			return Decision{}, apperr.Forbidden("Only Super Admin can perform this action")
		}
		return Decision{}, nil

	case PolicyOrganizationAdmin:
		orgID, err := requireUintParam(params, "organizationId")
		if err != nil {
			return Decision{}, err
		}
		if user.Role == domain.RoleSuperAdmin {
			return Decision{}, nil
		}
		if user.Role == domain.RoleOrganizationAdmin &&
			user.OrganizationID != nil && *user.OrganizationID == orgID {
			return Decision{}, nil
		}
		return Decision{}, apperr.Forbidden("You can only manage your own organization")

	case PolicyShopAdmin:
		shopID, err := requireUintParam(params, "shopId")
		if err != nil {
			return Decision{}, err
		}
		if user.Role == domain.RoleSuperAdmin {
			return Decision{}, nil
		}
		if user.Role == domain.RoleOrganizationAdmin && user.OrganizationID != nil {
			// Allowed, but the handler must still confirm the shop belongs
			// to this organization.
			return Decision{RequiredOrganizationID: user.OrganizationID}, nil
		}
		if user.Role == domain.RoleBranchAdmin &&
			user.ShopID != nil && *user.ShopID == shopID {
			return Decision{}, nil
		}
		return Decision{}, apperr.Forbidden("You can only manage your own shop")
	}

	return Decision{}, apperr.Forbidden("Access denied")
}

// requireUintParam parses a mandatory numeric path parameter
func requireUintParam(params map[string]string, name string) (uint, error) {
	raw, ok := params[name]
	if !ok || raw == "" {
		return 0, apperr.Validation(name + " parameter is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation(name + " parameter must be numeric")
	}
	return uint(n), nil
}

// RequirePolicy wraps Authorize as gin middleware. It must run after
// JWTAuthMiddleware so the user is already attached to the context.
func RequirePolicy(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		params := map[string]string{}
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}
		decision, err := Authorize(user, policy, params)
		if err != nil {
			if user != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": user.ID,
					"role":    user.Role,
					"path":    c.FullPath(),
				}).Warn("Unauthorized access attempt")
			}
			c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{
				"success": false,
				"message": apperr.Message(err, "Access denied"),
			})
			return
		}
		if decision.RequiredOrganizationID != nil {
			c.Set(CtxRequiredOrg, *decision.RequiredOrganizationID)
		}
		c.Next()
	}
}
