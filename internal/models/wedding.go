package models

import (
	"time"

	"gorm.io/datatypes"
)

type Wedding struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	BrideName        string     `gorm:"not null" json:"brideName"`
	GroomName        string     `gorm:"not null" json:"groomName"`
	WeddingDate      time.Time  `gorm:"not null" json:"weddingDate"`
	CeremonyType     string     `json:"ceremonyType"`
	CeremonyVenue    string     `gorm:"not null" json:"ceremonyVenue"`
	CeremonyAddress  string     `gorm:"not null" json:"ceremonyAddress"`
	CeremonyTime     string     `json:"ceremonyTime"`
	ReceptionVenue   string     `json:"receptionVenue"`
	ReceptionAddress string     `json:"receptionAddress"`
	ReceptionTime    string     `json:"receptionTime"`
	ContactEmail     string     `json:"contactEmail"`
	ContactPhone     string     `json:"contactPhone"`
	MaxGuests        int        `gorm:"not null;default:0" json:"maxGuests"`
	RSVPDeadline     *time.Time `json:"rsvpDeadline,omitempty"`
	Story            string     `gorm:"type:text" json:"story"`
	Slug             string     `gorm:"not null;uniqueIndex" json:"slug"`
	AdminSecretLink  string     `gorm:"not null;uniqueIndex" json:"adminSecretLink,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Public returns a copy safe to show guests.
func (w Wedding) Public() Wedding {
	w.AdminSecretLink = ""
	return w
}

type WeddingEvent struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	WeddingID   uint       `gorm:"not null;index" json:"weddingId"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	Venue       string     `json:"venue"`
	Address     string     `json:"address"`
	DressCode   string     `json:"dressCode"`
	SortOrder   int        `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type QuestionType string

const (
	QuestionText   QuestionType = "text"
	QuestionChoice QuestionType = "choice"
	QuestionYesNo  QuestionType = "yesno"
)

// CustomQuestion is an extra question the couple asks on the last RSVP step.
type CustomQuestion struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	WeddingID    uint                        `gorm:"not null;index" json:"weddingId"`
	Question     string                      `gorm:"not null" json:"question"`
	QuestionType QuestionType                `gorm:"type:varchar(20);not null;default:'text'" json:"questionType"`
	Options      datatypes.JSONSlice[string] `json:"options"`
	Required     bool                        `gorm:"not null;default:false" json:"required"`
	SortOrder    int                         `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

func (CustomQuestion) TableName() string { return "rsvp_questions" }
