package middleware

import (
	"testing"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestAuthorizeNilUserDenied(t *testing.T) {
	for _, policy := range []Policy{PolicySuperAdminOnly, PolicyOrganizationAdmin, PolicyShopAdmin} {
		_, err := Authorize(nil, policy, map[string]string{"organizationId": "1", "shopId": "1"})
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	}
}

func TestSuperAdminOnly(t *testing.T) {
	_, err := Authorize(&domain.User{Role: domain.RoleSuperAdmin}, PolicySuperAdminOnly, nil)
	assert.NoError(t, err)

	for _, role := range []string{domain.RoleUser, domain.RoleVendor, domain.RoleOrganizationAdmin, domain.RoleBranchAdmin} {
		_, err := Authorize(&domain.User{Role: role}, PolicySuperAdminOnly, nil)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), "role %s must be denied", role)
	}
}

func TestOrganizationAdminGuard(t *testing.T) {
	orgAdmin := &domain.User{ID: 7, Role: domain.RoleOrganizationAdmin, OrganizationID: uintPtr(42)}

	// Matching organization is allowed
	_, err := Authorize(orgAdmin, PolicyOrganizationAdmin, map[string]string{"organizationId": "42"})
	assert.NoError(t, err)

	// Different organization is denied
	_, err = Authorize(orgAdmin, PolicyOrganizationAdmin, map[string]string{"organizationId": "43"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// Super admin is allowed regardless of match
	_, err = Authorize(&domain.User{Role: domain.RoleSuperAdmin}, PolicyOrganizationAdmin, map[string]string{"organizationId": "43"})
	assert.NoError(t, err)

	// Missing path parameter is a validation failure, not forbidden
	_, err = Authorize(orgAdmin, PolicyOrganizationAdmin, map[string]string{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Admin without an affiliated organization fails closed
	_, err = Authorize(&domain.User{Role: domain.RoleOrganizationAdmin}, PolicyOrganizationAdmin, map[string]string{"organizationId": "42"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestShopAdminGuard(t *testing.T) {
	branchAdmin := &domain.User{ID: 3, Role: domain.RoleBranchAdmin, ShopID: uintPtr(9)}

	_, err := Authorize(branchAdmin, PolicyShopAdmin, map[string]string{"shopId": "9"})
	assert.NoError(t, err)

	_, err = Authorize(branchAdmin, PolicyShopAdmin, map[string]string{"shopId": "10"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// Organization admin passes with a deferred organization check
	orgAdmin := &domain.User{Role: domain.RoleOrganizationAdmin, OrganizationID: uintPtr(42)}
	decision, err := Authorize(orgAdmin, PolicyShopAdmin, map[string]string{"shopId": "10"})
	require.NoError(t, err)
	require.NotNil(t, decision.RequiredOrganizationID)
	assert.Equal(t, uint(42), *decision.RequiredOrganizationID)

	// Super admin passes without a deferred check
	decision, err = Authorize(&domain.User{Role: domain.RoleSuperAdmin}, PolicyShopAdmin, map[string]string{"shopId": "10"})
	require.NoError(t, err)
	assert.Nil(t, decision.RequiredOrganizationID)

	// Plain users are denied
	_, err = Authorize(&domain.User{Role: domain.RoleUser}, PolicyShopAdmin, map[string]string{"shopId": "9"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// Non-numeric path parameter is rejected
	_, err = Authorize(branchAdmin, PolicyShopAdmin, map[string]string{"shopId": "abc"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
