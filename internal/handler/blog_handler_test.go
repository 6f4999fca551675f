package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegoanwedding/marketplace/internal/auth"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/middleware"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/service"
)

func TestListPosts_Handler_DraftsOnlyForBlogRole(t *testing.T) {
	var sawDrafts []bool
	svc := &mockBlogService{
		listFn: func(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error) {
			sawDrafts = append(sawDrafts, includeDrafts)
			return []models.BlogPost{}, nil
		},
	}
	h := NewBlogHandler(svc)
	tokens := auth.Tokens{"blog-tok": auth.RoleBlog, "vendor-tok": auth.RoleVendor}
	identify := middleware.IdentifyAdmin(tokens)

	for _, token := range []string{"", "vendor-tok", "blog-tok"} {
		c, rec := newContext(http.MethodGet, "/api/blog", "")
		if token != "" {
			c.Request().Header.Set(middleware.HeaderAdminToken, token)
		}
		require.NoError(t, identify(h.ListPosts)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, []bool{false, false, true}, sawDrafts)
}

func TestGetPost_Handler(t *testing.T) {
	svc := &mockBlogService{
		getFn: func(ctx context.Context, idOrSlug string, includeDrafts bool) (*models.BlogPost, error) {
			if idOrSlug == "goa-venues" {
				return &models.BlogPost{ID: 1, Slug: idOrSlug, Published: true}, nil
			}
			return nil, service.ErrPostNotFound
		},
	}
	h := NewBlogHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/blog/goa-venues", "")
	c.SetParamNames("id")
	c.SetParamValues("goa-venues")
	require.NoError(t, h.GetPost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newContext(http.MethodGet, "/api/blog/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	assert.Equal(t, http.StatusNotFound, statusOf(h.GetPost(c)))
}

func TestCreatePost_Handler(t *testing.T) {
	svc := &mockBlogService{
		createFn: func(ctx context.Context, req dto.BlogPostRequest) (*models.BlogPost, error) {
			return &models.BlogPost{ID: 1, Title: req.Title}, nil
		},
	}
	h := NewBlogHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/blog", `{"title":"Monsoon weddings","content":"..."}`)
	require.NoError(t, h.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, _ = newContext(http.MethodPost, "/api/blog", `{"title":"No body"}`)
	assert.Equal(t, http.StatusBadRequest, statusOf(h.CreatePost(c)))
}

func TestBlogRoutes_RequireBlogScope(t *testing.T) {
	svc := &mockBlogService{
		deleteFn: func(ctx context.Context, id uint) error { return nil },
	}
	tokens := auth.Tokens{"blog-tok": auth.RoleBlog, "vendor-tok": auth.RoleVendor}
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	NewBlogHandler(svc).RegisterRoutes(e, Guards{
		Admin: func(s auth.Scope) echo.MiddlewareFunc { return middleware.RequireScope(tokens, s) },
	})

	cases := map[string]int{"": http.StatusUnauthorized, "vendor-tok": http.StatusForbidden, "blog-tok": http.StatusNoContent}
	for token, want := range cases {
		c, rec := newContext(http.MethodDelete, "/api/blog/1", "")
		req := c.Request()
		if token != "" {
			req.Header.Set(middleware.HeaderAdminToken, token)
		}
		e.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "token %q", token)
	}
}
