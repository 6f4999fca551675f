// Package auth maps opaque admin tokens to coarse roles.
package auth

import (
	"fmt"
	"strings"
)

type Role int

const (
	RoleNone Role = iota
	RoleFull
	RoleVendor
	RoleBlog
)

// Scope is the capability a route requires.
type Scope int

const (
	ScopeFull Scope = iota
	ScopeVendors
	ScopeBlog
)

func (r Role) String() string {
	switch r {
	case RoleFull:
		return "full-access"
	case RoleVendor:
		return "vendor-only"
	case RoleBlog:
		return "blog-only"
	default:
		return "none"
	}
}

// Allows reports whether r may act on scope s. Full access covers everything.
func (r Role) Allows(s Scope) bool {
	switch r {
	case RoleFull:
		return true
	case RoleVendor:
		return s == ScopeVendors
	case RoleBlog:
		return s == ScopeBlog
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "full-access", "admin":
		return RoleFull, nil
	case "vendor", "vendor-only", "vendors":
		return RoleVendor, nil
	case "blog", "blog-only":
		return RoleBlog, nil
	}
	return RoleNone, fmt.Errorf("unknown admin role %q", s)
}

// Tokens is the injected token table.
type Tokens map[string]Role

// ParseTokens reads "token=role,token=role".
func ParseTokens(raw string) (Tokens, error) {
	tokens := Tokens{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, roleName, ok := strings.Cut(pair, "=")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return nil, fmt.Errorf("malformed admin token entry %q", pair)
		}
		role, err := ParseRole(roleName)
		if err != nil {
			return nil, err
		}
		tokens[token] = role
	}
	return tokens, nil
}

func (t Tokens) Lookup(token string) Role {
	if token == "" {
		return RoleNone
	}
	return t[token]
}
