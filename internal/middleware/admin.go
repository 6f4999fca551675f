package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/auth"
)

const (
	HeaderAdminToken = "X-Admin-Token"
	roleContextKey   = "admin_role"
)

// RequireScope rejects requests whose x-admin-token is missing or unknown
// (401) or whose role does not cover scope (403).
func RequireScope(tokens auth.Tokens, scope auth.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAdminToken)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin token required")
			}
			role := tokens.Lookup(token)
			if role == auth.RoleNone {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
			}
			if !role.Allows(scope) {
				return echo.NewHTTPError(http.StatusForbidden, "admin token does not grant "+scopeName(scope)+" access")
			}
			c.Set(roleContextKey, role)
			return next(c)
		}
	}
}

// IdentifyAdmin records the caller's role when a known token is sent and
// lets everyone else through.
func IdentifyAdmin(tokens auth.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role := tokens.Lookup(c.Request().Header.Get(HeaderAdminToken)); role != auth.RoleNone {
				c.Set(roleContextKey, role)
			}
			return next(c)
		}
	}
}

// RoleFrom returns the role stored by RequireScope or IdentifyAdmin.
func RoleFrom(c echo.Context) auth.Role {
	if role, ok := c.Get(roleContextKey).(auth.Role); ok {
		return role
	}
	return auth.RoleNone
}

func scopeName(s auth.Scope) string {
	switch s {
	case auth.ScopeVendors:
		return "vendor"
	case auth.ScopeBlog:
		return "blog"
	default:
		return "full"
	}
}
