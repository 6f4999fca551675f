package models

import "time"

type RSVP struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	InvitationID        uint      `gorm:"not null;uniqueIndex" json:"invitationId"`
	WeddingID           uint      `gorm:"not null;index" json:"weddingId"`
	GuestName           string    `gorm:"not null" json:"guestName"`
	GuestEmail          string    `gorm:"not null" json:"guestEmail"`
	GuestPhone          string    `json:"guestPhone"`
	AttendingCeremony   bool      `gorm:"not null" json:"attendingCeremony"`
	AttendingReception  bool      `gorm:"not null" json:"attendingReception"`
	NumberOfGuests      int       `gorm:"not null;default:1" json:"numberOfGuests"`
	CeremonyType        string    `json:"ceremonyType"`
	CeremonyTime        string    `json:"ceremonyTime"`
	ReceptionTime       string    `json:"receptionTime"`
	DietaryRestrictions string    `gorm:"type:text" json:"dietaryRestrictions"`
	Message             string    `gorm:"type:text" json:"message"`
	CreatedAt           time.Time `json:"createdAt"`

	Responses []RSVPResponse `gorm:"foreignKey:RSVPID" json:"responses,omitempty"`
}

func (RSVP) TableName() string { return "rsvps" }

// RSVPResponse is one answer to a CustomQuestion.
type RSVPResponse struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RSVPID     uint      `gorm:"column:rsvp_id;not null;index" json:"rsvpId"`
	QuestionID uint      `gorm:"not null;index" json:"questionId"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (RSVPResponse) TableName() string { return "rsvp_responses" }

// All lists every table model in migration order.
func All() []any {
	return []any{
		&Category{}, &Vendor{}, &Review{},
		&BlogPost{}, &BusinessSubmission{}, &Contact{},
		&Wedding{}, &WeddingEvent{}, &CustomQuestion{},
		&Invitation{}, &RSVP{}, &RSVPResponse{},
	}
}
