package models

import "time"

type InvitationStatus string

const (
	InvitationSent      InvitationStatus = "sent"
	InvitationViewed    InvitationStatus = "viewed"
	InvitationResponded InvitationStatus = "responded"
)

var invitationRank = map[InvitationStatus]int{
	InvitationSent:      0,
	InvitationViewed:    1,
	InvitationResponded: 2,
}

// CanAdvance reports whether moving from s to next keeps the
// sent -> viewed -> responded order.
func (s InvitationStatus) CanAdvance(next InvitationStatus) bool {
	from, ok := invitationRank[s]
	if !ok {
		return false
	}
	to, ok := invitationRank[next]
	return ok && to > from
}

type Invitation struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	WeddingID      uint             `gorm:"not null;index" json:"weddingId"`
	GuestName      string           `gorm:"not null" json:"guestName"`
	GuestEmail     string           `gorm:"not null" json:"guestEmail"`
	InvitationCode string           `gorm:"type:varchar(64);not null;uniqueIndex" json:"invitationCode"`
	MaxGuests      int              `gorm:"not null;default:1" json:"maxGuests"`
	AllowPlusOne   bool             `gorm:"not null;default:false" json:"allowPlusOne"`
	Status         InvitationStatus `gorm:"type:varchar(20);not null;default:'sent';index" json:"status"`
	SentAt         time.Time        `json:"sentAt"`
	ViewedAt       *time.Time       `json:"viewedAt,omitempty"`
	RespondedAt    *time.Time       `json:"respondedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`

	Wedding *Wedding `gorm:"foreignKey:WeddingID" json:"wedding,omitempty"`
}
