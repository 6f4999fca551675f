package wizard

import (
	"strings"
	"time"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/slug"
)

const DateLayout = "2006-01-02"

// WeddingForm is the single-page form a couple fills to create their wedding.
type WeddingForm struct {
	BrideName        string
	GroomName        string
	WeddingDate      string
	CeremonyType     string
	CeremonyVenue    string
	CeremonyAddress  string
	CeremonyTime     TimeOfDay
	ReceptionVenue   string
	ReceptionAddress string
	ReceptionTime    TimeOfDay
	ContactEmail     string
	ContactPhone     string
	MaxGuests        int
}

func (f WeddingForm) Validate() error {
	if strings.TrimSpace(f.BrideName) == "" {
		return fieldErr("brideName", "is required")
	}
	if strings.TrimSpace(f.GroomName) == "" {
		return fieldErr("groomName", "is required")
	}
	if _, err := time.Parse(DateLayout, f.WeddingDate); err != nil {
		return fieldErr("weddingDate", "must be a date like 2026-12-19")
	}
	if strings.TrimSpace(f.CeremonyVenue) == "" {
		return fieldErr("ceremonyVenue", "is required")
	}
	if strings.TrimSpace(f.CeremonyAddress) == "" {
		return fieldErr("ceremonyAddress", "is required")
	}
	if !f.CeremonyTime.IsComplete() {
		return fieldErr("ceremonyTime", "hour, minute and AM/PM are required")
	}
	if !CheckOptionalTime(f.ReceptionTime) {
		return fieldErr("receptionTime", "fill in hour, minute and AM/PM or leave all empty")
	}
	if f.ContactEmail != "" && !ValidEmail(f.ContactEmail) {
		return fieldErr("contactEmail", "is not a valid email address")
	}
	if f.MaxGuests < 0 {
		return fieldErr("maxGuests", "cannot be negative")
	}
	return nil
}

func (f WeddingForm) Slug() string {
	return slug.FromNames(f.BrideName, f.GroomName)
}

// Request validates the form and builds the POST /api/weddings body.
func (f WeddingForm) Request() (dto.CreateWeddingRequest, error) {
	if err := f.Validate(); err != nil {
		return dto.CreateWeddingRequest{}, err
	}
	return dto.CreateWeddingRequest{
		BrideName:        strings.TrimSpace(f.BrideName),
		GroomName:        strings.TrimSpace(f.GroomName),
		WeddingDate:      f.WeddingDate,
		CeremonyType:     f.CeremonyType,
		CeremonyVenue:    strings.TrimSpace(f.CeremonyVenue),
		CeremonyAddress:  strings.TrimSpace(f.CeremonyAddress),
		CeremonyTime:     f.CeremonyTime.String(),
		ReceptionVenue:   strings.TrimSpace(f.ReceptionVenue),
		ReceptionAddress: strings.TrimSpace(f.ReceptionAddress),
		ReceptionTime:    f.ReceptionTime.String(),
		ContactEmail:     strings.TrimSpace(f.ContactEmail),
		ContactPhone:     strings.TrimSpace(f.ContactPhone),
		MaxGuests:        f.MaxGuests,
		Slug:             f.Slug(),
	}, nil
}
