// Package wizard holds the client form logic for the RSVP and wedding
// creation flows, independent of any rendering.
package wizard

import (
	"errors"
	"strconv"
	"strings"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
)

type Step int

const (
	StepGuestInfo Step = iota + 1
	StepPartySize
	StepAttendance
	StepDetails
)

func (s Step) String() string {
	switch s {
	case StepGuestInfo:
		return "guest-info"
	case StepPartySize:
		return "party-size"
	case StepAttendance:
		return "attendance"
	case StepDetails:
		return "details"
	}
	return "unknown"
}

type edges struct {
	next, back Step
}

// transitions is the whole state machine; zero means "no edge".
var transitions = map[Step]edges{
	StepGuestInfo:  {next: StepPartySize},
	StepPartySize:  {next: StepAttendance, back: StepGuestInfo},
	StepAttendance: {next: StepDetails, back: StepPartySize},
	StepDetails:    {back: StepAttendance},
}

var (
	ErrLastStep  = errors.New("already on the last step")
	ErrFirstStep = errors.New("already on the first step")
)

// GuestForm is the four-step RSVP wizard shown to a guest.
type GuestForm struct {
	InvitationCode string
	MaxGuests      int
	Questions      []models.CustomQuestion

	GuestName           string
	GuestEmail          string
	GuestPhone          string
	NumberOfGuests      int
	AttendingCeremony   bool
	AttendingReception  bool
	CeremonyType        string
	CeremonyTime        TimeOfDay
	ReceptionTime       TimeOfDay
	DietaryRestrictions string
	Message             string
	Answers             map[uint]string

	step Step
}

// NewGuestForm starts a wizard for an invitation. The guest name and email
// are prefilled from the invitation.
func NewGuestForm(inv models.Invitation, questions []models.CustomQuestion) *GuestForm {
	return &GuestForm{
		InvitationCode: inv.InvitationCode,
		MaxGuests:      inv.MaxGuests,
		Questions:      questions,
		GuestName:      inv.GuestName,
		GuestEmail:     inv.GuestEmail,
		NumberOfGuests: 1,
		Answers:        map[uint]string{},
		step:           StepGuestInfo,
	}
}

func (f *GuestForm) Step() Step {
	return f.step
}

// Next validates the current step and, if it passes, advances.
func (f *GuestForm) Next() error {
	if err := f.ValidateStep(f.step); err != nil {
		return err
	}
	next := transitions[f.step].next
	if next == 0 {
		return ErrLastStep
	}
	f.step = next
	return nil
}

// Back never validates; leaving a step keeps what was typed.
func (f *GuestForm) Back() error {
	back := transitions[f.step].back
	if back == 0 {
		return ErrFirstStep
	}
	f.step = back
	return nil
}

func (f *GuestForm) ValidateStep(s Step) error {
	switch s {
	case StepGuestInfo:
		if strings.TrimSpace(f.GuestName) == "" {
			return fieldErr("guestName", "is required")
		}
		if !ValidEmail(strings.TrimSpace(f.GuestEmail)) {
			return fieldErr("guestEmail", "is not a valid email address")
		}
	case StepPartySize:
		limit := f.MaxGuests
		if limit < 1 {
			limit = 1
		}
		if f.NumberOfGuests < 1 || f.NumberOfGuests > limit {
			return fieldErr("numberOfGuests", "must be between 1 and "+strconv.Itoa(limit))
		}
	case StepAttendance:
		if strings.TrimSpace(f.CeremonyType) == "" {
			return fieldErr("ceremonyType", "select a ceremony")
		}
		if !f.CeremonyTime.IsComplete() {
			return fieldErr("ceremonyTime", "hour, minute and AM/PM are required")
		}
		if !CheckOptionalTime(f.ReceptionTime) {
			return fieldErr("receptionTime", "fill in hour, minute and AM/PM or leave all empty")
		}
	case StepDetails:
		for _, q := range f.Questions {
			if q.Required && strings.TrimSpace(f.Answers[q.ID]) == "" {
				return fieldErr("responses", "question \""+q.Question+"\" is required")
			}
		}
	default:
		return fieldErr("step", "unknown step")
	}
	return nil
}

// Submit validates every step and builds the request for POST /api/rsvp/submit.
func (f *GuestForm) Submit() (dto.SubmitRSVPRequest, error) {
	for s := StepGuestInfo; s <= StepDetails; s++ {
		if err := f.ValidateStep(s); err != nil {
			f.step = s
			return dto.SubmitRSVPRequest{}, err
		}
	}

	var responses map[string]string
	for id, answer := range f.Answers {
		if strings.TrimSpace(answer) == "" {
			continue
		}
		if responses == nil {
			responses = map[string]string{}
		}
		responses[strconv.FormatUint(uint64(id), 10)] = strings.TrimSpace(answer)
	}

	return dto.SubmitRSVPRequest{
		InvitationCode:      f.InvitationCode,
		GuestName:           strings.TrimSpace(f.GuestName),
		GuestEmail:          strings.TrimSpace(f.GuestEmail),
		GuestPhone:          strings.TrimSpace(f.GuestPhone),
		AttendingCeremony:   f.AttendingCeremony,
		AttendingReception:  f.AttendingReception,
		NumberOfGuests:      f.NumberOfGuests,
		CeremonyType:        f.CeremonyType,
		CeremonyTime:        f.CeremonyTime.String(),
		ReceptionTime:       f.ReceptionTime.String(),
		DietaryRestrictions: strings.TrimSpace(f.DietaryRestrictions),
		Message:             strings.TrimSpace(f.Message),
		Responses:           responses,
	}, nil
}
