package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/auth"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/service"
	"github.com/thegoanwedding/marketplace/internal/validation"
)

type VendorHandler struct {
	svc service.VendorService
}

func NewVendorHandler(svc service.VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

func (h *VendorHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	admin := g.admin(auth.ScopeVendors)

	vendors := e.Group("/api/vendors")
	vendors.GET("", h.ListVendors, chain(g.Cache)...)
	vendors.POST("", h.CreateVendor, chain(admin)...)
	vendors.POST("/bulk", h.BulkImport, chain(admin)...)
	vendors.GET("/:id", h.GetVendor, chain(g.Cache)...)
	vendors.PUT("/:id", h.UpdateVendor, chain(admin)...)
	vendors.DELETE("/:id", h.DeleteVendor, chain(admin)...)
	vendors.GET("/:id/reviews", h.ListReviews, chain(g.Cache)...)
	vendors.POST("/:id/reviews", h.AddReview, chain(g.Limit)...)

	e.GET("/api/categories", h.ListCategories, chain(g.Cache)...)
	e.POST("/api/categories", h.CreateCategory, chain(admin)...)
}

func (h *VendorHandler) ListVendors(c echo.Context) error {
	filter := models.VendorFilter{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}
	if s := c.QueryParam("featured"); s != "" {
		featured, err := strconv.ParseBool(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "featured must be true or false")
		}
		filter.Featured = &featured
	}
	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		return err
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		return err
	}

	vendors, err := h.svc.ListVendors(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vendors)
}

func (h *VendorHandler) GetVendor(c echo.Context) error {
	id, err := parseID(c, "id", "vendor")
	if err != nil {
		return err
	}
	vendor, err := h.svc.GetVendor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var req dto.CreateVendorRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	vendor, err := h.svc.CreateVendor(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	id, err := parseID(c, "id", "vendor")
	if err != nil {
		return err
	}
	var req dto.UpdateVendorRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	vendor, err := h.svc.UpdateVendor(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	id, err := parseID(c, "id", "vendor")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteVendor(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VendorHandler) BulkImport(c echo.Context) error {
	reqs, err := bindList[dto.CreateVendorRequest](c)
	if err != nil {
		return err
	}
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("vendor %d: %s", i+1, validation.Describe(err)))
		}
	}
	vendors, err := h.svc.BulkImport(c.Request().Context(), reqs)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.BulkImportResponse{Created: len(vendors), Vendors: vendors})
}

func (h *VendorHandler) ListReviews(c echo.Context) error {
	id, err := parseID(c, "id", "vendor")
	if err != nil {
		return err
	}
	reviews, err := h.svc.ListReviews(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *VendorHandler) AddReview(c echo.Context) error {
	id, err := parseID(c, "id", "vendor")
	if err != nil {
		return err
	}
	var req dto.CreateReviewRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	review, err := h.svc.AddReview(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *VendorHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *VendorHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	category, err := h.svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func queryInt(c echo.Context, name string) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}
