package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/auth"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/service"
)

type InquiryHandler struct {
	svc service.InquiryService
}

func NewInquiryHandler(svc service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

func (h *InquiryHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	admin := g.admin(auth.ScopeFull)

	subs := e.Group("/api/business-submissions")
	subs.POST("", h.Submit, chain(g.Limit)...)
	subs.GET("", h.ListSubmissions, chain(admin)...)
	subs.PUT("/:id/status", h.SetStatus, chain(admin)...)

	e.POST("/api/contacts", h.Contact, chain(g.Limit)...)
	e.GET("/api/contacts", h.ListContacts, chain(admin)...)
}

func (h *InquiryHandler) Submit(c echo.Context) error {
	var req dto.BusinessSubmissionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	sub, err := h.svc.Submit(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *InquiryHandler) ListSubmissions(c echo.Context) error {
	var status *models.SubmissionStatus
	if s := c.QueryParam("status"); s != "" {
		st := models.SubmissionStatus(s)
		status = &st
	}
	subs, err := h.svc.ListSubmissions(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, subs)
}

func (h *InquiryHandler) SetStatus(c echo.Context) error {
	id, err := parseID(c, "id", "submission")
	if err != nil {
		return err
	}
	var req dto.SubmissionStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	sub, err := h.svc.SetStatus(c.Request().Context(), id, models.SubmissionStatus(req.Status))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *InquiryHandler) Contact(c echo.Context) error {
	var req dto.ContactRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	contact, err := h.svc.Contact(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, contact)
}

func (h *InquiryHandler) ListContacts(c echo.Context) error {
	contacts, err := h.svc.ListContacts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, contacts)
}
