package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/auth"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/middleware"
	"github.com/thegoanwedding/marketplace/internal/service"
)

type BlogHandler struct {
	svc service.BlogService
}

func NewBlogHandler(svc service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func (h *BlogHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	admin := g.admin(auth.ScopeBlog)

	blog := e.Group("/api/blog")
	blog.GET("", h.ListPosts, chain(g.Cache, g.Identify)...)
	blog.GET("/:id", h.GetPost, chain(g.Cache, g.Identify)...)
	blog.POST("", h.CreatePost, chain(admin)...)
	blog.PUT("/:id", h.UpdatePost, chain(admin)...)
	blog.DELETE("/:id", h.DeletePost, chain(admin)...)
}

// drafts reports whether the caller may see unpublished posts.
func drafts(c echo.Context) bool {
	return middleware.RoleFrom(c).Allows(auth.ScopeBlog)
}

func (h *BlogHandler) ListPosts(c echo.Context) error {
	posts, err := h.svc.List(c.Request().Context(), drafts(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost accepts either the numeric id or the slug.
func (h *BlogHandler) GetPost(c echo.Context) error {
	post, err := h.svc.Get(c.Request().Context(), c.Param("id"), drafts(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req dto.BlogPostRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	post, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	var req dto.BlogPostRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	post, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
