package dto

import (
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/share"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type InvitationResponse struct {
	models.Invitation
	RSVPLink string `json:"rsvpLink"`
}

type IssueInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

type InvitationView struct {
	Invitation models.Invitation       `json:"invitation"`
	Wedding    models.Wedding          `json:"wedding"`
	Events     []models.WeddingEvent   `json:"events"`
	Questions  []models.CustomQuestion `json:"questions"`
}

type SubmitRSVPResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	RSVP    models.RSVP `json:"rsvp"`
}

type WeddingCreatedResponse struct {
	Wedding models.Wedding `json:"wedding"`
	share.Links
}

type WeddingPage struct {
	Wedding   models.Wedding          `json:"wedding"`
	Events    []models.WeddingEvent   `json:"events"`
	Questions []models.CustomQuestion `json:"questions"`
}

type DashboardStats struct {
	Invited            int `json:"invited"`
	Sent               int `json:"sent"`
	Viewed             int `json:"viewed"`
	Responded          int `json:"responded"`
	AttendingCeremony  int `json:"attendingCeremony"`
	AttendingReception int `json:"attendingReception"`
	Declined           int `json:"declined"`
	TotalGuests        int `json:"totalGuests"`
}

type Dashboard struct {
	Wedding     models.Wedding          `json:"wedding"`
	Invitations []models.Invitation     `json:"invitations"`
	RSVPs       []models.RSVP           `json:"rsvps"`
	Events      []models.WeddingEvent   `json:"events"`
	Questions   []models.CustomQuestion `json:"questions"`
	Stats       DashboardStats          `json:"stats"`
	Links       share.Links             `json:"links"`
}

type BulkImportResponse struct {
	Created int             `json:"created"`
	Vendors []models.Vendor `json:"vendors"`
}
