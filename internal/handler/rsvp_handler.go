package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/service"
	"github.com/thegoanwedding/marketplace/internal/share"
)

type RSVPHandler struct {
	svc       service.RSVPService
	publicURL string
}

func NewRSVPHandler(svc service.RSVPService, publicURL string) *RSVPHandler {
	return &RSVPHandler{svc: svc, publicURL: publicURL}
}

func (h *RSVPHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	r := e.Group("/api/rsvp")
	r.POST("/invitations", h.IssueInvitations, chain(g.Limit)...)
	r.GET("/invitation/:code", h.GetInvitation)
	r.POST("/submit", h.Submit, chain(g.Limit)...)
}

func (h *RSVPHandler) IssueInvitations(c echo.Context) error {
	reqs, err := bindList[dto.IssueInvitationRequest](c)
	if err != nil {
		return err
	}
	invitations, err := h.svc.IssueInvitations(c.Request().Context(), reqs)
	if err != nil {
		return httpError(err)
	}

	base := origin(c, h.publicURL)
	resp := dto.IssueInvitationsResponse{Invitations: make([]dto.InvitationResponse, len(invitations))}
	for i, inv := range invitations {
		resp.Invitations[i] = dto.InvitationResponse{
			Invitation: inv,
			RSVPLink:   share.RSVPLink(base, inv.InvitationCode),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RSVPHandler) GetInvitation(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invitation code is required")
	}
	view, err := h.svc.GetInvitation(c.Request().Context(), code)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *RSVPHandler) Submit(c echo.Context) error {
	var req dto.SubmitRSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.InvitationCode == "" || req.GuestName == "" || req.GuestEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invitationCode, guestName and guestEmail are required")
	}

	rsvp, err := h.svc.Submit(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.SubmitRSVPResponse{
		Success: true,
		Message: "RSVP submitted successfully",
		RSVP:    *rsvp,
	})
}
