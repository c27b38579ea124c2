package core

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

// AccessRole 是 identity provider 簽發在 token 裡的存取角色，與員工職位無關
type AccessRole string

const (
	AccessRoleSuperAdmin AccessRole = "SUPERADMIN"
	AccessRoleAdmin      AccessRole = "ADMIN"
	AccessRoleUser       AccessRole = "USER"
)

type Claims struct {
	Email string     `json:"email,omitempty"`
	OrgID string     `json:"orgId"`
	Role  AccessRole `json:"role"`
	jwt.RegisteredClaims
}

// CanAccessOrg SUPERADMIN 可跨組織，其餘只能操作自己的組織
func (c *Claims) CanAccessOrg(orgID string) bool {
	if c == nil {
		return false
	}
	return c.Role == AccessRoleSuperAdmin || c.OrgID == orgID
}

// CanWrite USER 只能讀取
func (c *Claims) CanWrite() bool {
	return c != nil && (c.Role == AccessRoleSuperAdmin || c.Role == AccessRoleAdmin)
}

type claimsContextKey struct{}

// WithClaims 讓 service 層（audit log）取得呼叫者
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFrom 未驗證（auth 停用）時回傳 nil
func ClaimsFrom(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey{}).(*Claims)
	return claims
}

// Actor audit log 使用的呼叫者描述
func (c *Claims) Actor() string {
	if c == nil {
		return ""
	}
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}
