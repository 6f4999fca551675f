package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/middleware"
	"github.com/thegoanwedding/marketplace/internal/service"
	"github.com/thegoanwedding/marketplace/internal/share"
)

const (
	minQRSize = 128
	maxQRSize = 1024
)

type WeddingHandler struct {
	svc       service.WeddingService
	publicURL string
}

func NewWeddingHandler(svc service.WeddingService, publicURL string) *WeddingHandler {
	return &WeddingHandler{svc: svc, publicURL: publicURL}
}

// RegisterRoutes shares one parameter name under /api/weddings: it carries
// the slug on public pages and the numeric id on events and questions.
func (h *WeddingHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	w := e.Group("/api/weddings")
	w.POST("", h.CreateWedding, chain(g.Limit)...)
	w.GET("/dashboard", h.Dashboard)
	w.GET("/dashboard/qr", h.DashboardQR)
	w.GET("/:wedding", h.GetWedding)
	w.GET("/:wedding/qr", h.GuestQR)
	w.GET("/:wedding/events", h.ListEvents)
	w.POST("/:wedding/events", h.AddEvent, chain(g.Limit)...)
	w.GET("/:wedding/questions", h.ListQuestions)
	w.POST("/:wedding/questions", h.AddQuestion, chain(g.Limit)...)
}

func (h *WeddingHandler) CreateWedding(c echo.Context) error {
	var req dto.CreateWeddingRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	wedding, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.WeddingCreatedResponse{
		Wedding: *wedding,
		Links:   share.WeddingLinks(origin(c, h.publicURL), wedding.Slug, wedding.AdminSecretLink),
	})
}

func (h *WeddingHandler) GetWedding(c echo.Context) error {
	page, err := h.svc.GetBySlug(c.Request().Context(), c.Param("wedding"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *WeddingHandler) GuestQR(c echo.Context) error {
	page, err := h.svc.GetBySlug(c.Request().Context(), c.Param("wedding"))
	if err != nil {
		return httpError(err)
	}
	links := share.WeddingLinks(origin(c, h.publicURL), page.Wedding.Slug, "")
	return h.qr(c, links.GuestURL)
}

func (h *WeddingHandler) Dashboard(c echo.Context) error {
	secret, err := weddingSecret(c)
	if err != nil {
		return err
	}
	d, err := h.svc.Dashboard(c.Request().Context(), secret)
	if err != nil {
		return httpError(err)
	}
	d.Links = share.WeddingLinks(origin(c, h.publicURL), d.Wedding.Slug, d.Wedding.AdminSecretLink)
	return c.JSON(http.StatusOK, d)
}

func (h *WeddingHandler) DashboardQR(c echo.Context) error {
	secret, err := weddingSecret(c)
	if err != nil {
		return err
	}
	wedding, err := h.svc.FindBySecret(c.Request().Context(), secret)
	if err != nil {
		return httpError(err)
	}
	links := share.WeddingLinks(origin(c, h.publicURL), wedding.Slug, wedding.AdminSecretLink)
	return h.qr(c, links.DashboardURL)
}

func (h *WeddingHandler) ListEvents(c echo.Context) error {
	id, err := parseID(c, "wedding", "wedding")
	if err != nil {
		return err
	}
	events, err := h.svc.ListEvents(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *WeddingHandler) AddEvent(c echo.Context) error {
	id, err := parseID(c, "wedding", "wedding")
	if err != nil {
		return err
	}
	secret, err := weddingSecret(c)
	if err != nil {
		return err
	}
	var req dto.CreateWeddingEventRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	event, err := h.svc.AddEvent(c.Request().Context(), id, secret, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *WeddingHandler) ListQuestions(c echo.Context) error {
	id, err := parseID(c, "wedding", "wedding")
	if err != nil {
		return err
	}
	questions, err := h.svc.ListQuestions(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, questions)
}

func (h *WeddingHandler) AddQuestion(c echo.Context) error {
	id, err := parseID(c, "wedding", "wedding")
	if err != nil {
		return err
	}
	secret, err := weddingSecret(c)
	if err != nil {
		return err
	}
	var req dto.CreateQuestionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	q, err := h.svc.AddQuestion(c.Request().Context(), id, secret, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, q)
}

func (h *WeddingHandler) qr(c echo.Context, content string) error {
	size := share.DefaultQRSize
	if s := c.QueryParam("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < minQRSize || n > maxQRSize {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be between 128 and 1024")
		}
		size = n
	}
	png, err := share.QRCode(content, size)
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "image/png", png)
}

// weddingSecret reads the dashboard secret from the header or ?secret=.
func weddingSecret(c echo.Context) (string, error) {
	secret := c.Request().Header.Get(middleware.HeaderWeddingSecret)
	if secret == "" {
		secret = c.QueryParam("secret")
	}
	if secret == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "wedding secret required")
	}
	return secret, nil
}
