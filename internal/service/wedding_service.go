package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"github.com/thegoanwedding/marketplace/internal/slug"
	"github.com/thegoanwedding/marketplace/internal/wizard"
	"gorm.io/gorm"
)

const maxSlugAttempts = 50

type WeddingService interface {
	Create(ctx context.Context, req dto.CreateWeddingRequest) (*models.Wedding, error)
	GetBySlug(ctx context.Context, slug string) (*dto.WeddingPage, error)
	FindBySecret(ctx context.Context, secret string) (*models.Wedding, error)
	Dashboard(ctx context.Context, secret string) (*dto.Dashboard, error)

	ListEvents(ctx context.Context, weddingID uint) ([]models.WeddingEvent, error)
	AddEvent(ctx context.Context, weddingID uint, secret string, req dto.CreateWeddingEventRequest) (*models.WeddingEvent, error)
	ListQuestions(ctx context.Context, weddingID uint) ([]models.CustomQuestion, error)
	AddQuestion(ctx context.Context, weddingID uint, secret string, req dto.CreateQuestionRequest) (*models.CustomQuestion, error)
}

type weddingService struct {
	weddings    repository.WeddingRepository
	invitations repository.InvitationRepository
	rsvps       repository.RSVPRepository
	publisher   EventPublisher
}

func NewWeddingService(
	weddings repository.WeddingRepository,
	invitations repository.InvitationRepository,
	rsvps repository.RSVPRepository,
	publisher EventPublisher,
) WeddingService {
	return &weddingService{
		weddings:    weddings,
		invitations: invitations,
		rsvps:       rsvps,
		publisher:   publisher,
	}
}

func (s *weddingService) Create(ctx context.Context, req dto.CreateWeddingRequest) (*models.Wedding, error) {
	form, err := weddingForm(req)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, invalid("%s", err.Error())
	}

	date, _ := time.Parse(wizard.DateLayout, req.WeddingDate)
	var deadline *time.Time
	if req.RSVPDeadline != "" {
		d, err := time.Parse(wizard.DateLayout, req.RSVPDeadline)
		if err != nil {
			return nil, invalid("rsvpDeadline: must be a date like 2026-12-01")
		}
		deadline = &d
	}

	secret := strings.TrimSpace(req.AdminSecretLink)
	if secret == "" {
		if secret, err = NewAdminSecret(); err != nil {
			return nil, err
		}
	}

	base := slug.Make(req.Slug)
	if base == "" {
		base = form.Slug()
	}
	if base == "" {
		base = "wedding"
	}
	unique, err := s.uniqueSlug(ctx, base)
	if err != nil {
		return nil, err
	}

	wedding := &models.Wedding{
		BrideName:        strings.TrimSpace(req.BrideName),
		GroomName:        strings.TrimSpace(req.GroomName),
		WeddingDate:      date,
		CeremonyType:     req.CeremonyType,
		CeremonyVenue:    strings.TrimSpace(req.CeremonyVenue),
		CeremonyAddress:  strings.TrimSpace(req.CeremonyAddress),
		CeremonyTime:     form.CeremonyTime.String(),
		ReceptionVenue:   strings.TrimSpace(req.ReceptionVenue),
		ReceptionAddress: strings.TrimSpace(req.ReceptionAddress),
		ReceptionTime:    form.ReceptionTime.String(),
		ContactEmail:     strings.TrimSpace(req.ContactEmail),
		ContactPhone:     strings.TrimSpace(req.ContactPhone),
		MaxGuests:        req.MaxGuests,
		RSVPDeadline:     deadline,
		Story:            req.Story,
		Slug:             unique,
		AdminSecretLink:  secret,
	}
	if err := s.weddings.Create(ctx, wedding); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: slug or secret link already taken", ErrConflict)
		}
		return nil, fmt.Errorf("insert wedding: %w", err)
	}

	publish(s.publisher, KeyWeddingCreated, wedding.Public())
	return wedding, nil
}

// weddingForm maps the request back onto the form so both sides share one
// set of rules.
func weddingForm(req dto.CreateWeddingRequest) (wizard.WeddingForm, error) {
	form := wizard.WeddingForm{
		BrideName:        req.BrideName,
		GroomName:        req.GroomName,
		WeddingDate:      req.WeddingDate,
		CeremonyType:     req.CeremonyType,
		CeremonyVenue:    req.CeremonyVenue,
		CeremonyAddress:  req.CeremonyAddress,
		ReceptionVenue:   req.ReceptionVenue,
		ReceptionAddress: req.ReceptionAddress,
		ContactEmail:     strings.TrimSpace(req.ContactEmail),
		ContactPhone:     req.ContactPhone,
		MaxGuests:        req.MaxGuests,
	}
	if strings.TrimSpace(req.CeremonyTime) != "" {
		t, err := wizard.ParseTimeOfDay(req.CeremonyTime)
		if err != nil {
			return form, invalid("ceremonyTime: %s", err.Error())
		}
		form.CeremonyTime = t
	}
	if strings.TrimSpace(req.ReceptionTime) != "" {
		t, err := wizard.ParseTimeOfDay(req.ReceptionTime)
		if err != nil {
			return form, invalid("receptionTime: %s", err.Error())
		}
		form.ReceptionTime = t
	}
	return form, nil
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func (s *weddingService) uniqueSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for n := 2; n < maxSlugAttempts+2; n++ {
		taken, err := s.weddings.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("%w: no free slug for %q", ErrConflict, base)
}

func (s *weddingService) GetBySlug(ctx context.Context, slug string) (*dto.WeddingPage, error) {
	wedding, err := s.weddings.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, ErrWeddingNotFound, "load wedding")
	}
	events, questions, err := s.details(ctx, wedding.ID)
	if err != nil {
		return nil, err
	}
	return &dto.WeddingPage{Wedding: wedding.Public(), Events: events, Questions: questions}, nil
}

func (s *weddingService) FindBySecret(ctx context.Context, secret string) (*models.Wedding, error) {
	if secret == "" {
		return nil, ErrWeddingNotFound
	}
	wedding, err := s.weddings.FindBySecret(ctx, secret)
	if err != nil {
		return nil, notFound(err, ErrWeddingNotFound, "load wedding")
	}
	return wedding, nil
}

func (s *weddingService) Dashboard(ctx context.Context, secret string) (*dto.Dashboard, error) {
	wedding, err := s.FindBySecret(ctx, secret)
	if err != nil {
		return nil, err
	}
	invitations, err := s.invitations.ListByWedding(ctx, wedding.ID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	rsvps, err := s.rsvps.ListByWedding(ctx, wedding.ID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	events, questions, err := s.details(ctx, wedding.ID)
	if err != nil {
		return nil, err
	}

	return &dto.Dashboard{
		Wedding:     *wedding,
		Invitations: nonNil(invitations),
		RSVPs:       nonNil(rsvps),
		Events:      events,
		Questions:   questions,
		Stats:       Stats(invitations, rsvps),
	}, nil
}

// Stats summarizes invitation progress and RSVP attendance. Guests are
// counted only for RSVPs attending at least one part of the day.
func Stats(invitations []models.Invitation, rsvps []models.RSVP) dto.DashboardStats {
	st := dto.DashboardStats{Invited: len(invitations)}
	for _, inv := range invitations {
		switch inv.Status {
		case models.InvitationSent:
			st.Sent++
		case models.InvitationViewed:
			st.Viewed++
		case models.InvitationResponded:
			st.Responded++
		}
	}
	for _, r := range rsvps {
		if r.AttendingCeremony {
			st.AttendingCeremony++
		}
		if r.AttendingReception {
			st.AttendingReception++
		}
		if !r.AttendingCeremony && !r.AttendingReception {
			st.Declined++
			continue
		}
		st.TotalGuests += r.NumberOfGuests
	}
	return st
}

func (s *weddingService) ListEvents(ctx context.Context, weddingID uint) ([]models.WeddingEvent, error) {
	if _, err := s.load(ctx, weddingID); err != nil {
		return nil, err
	}
	events, err := s.weddings.ListEvents(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return nonNil(events), nil
}

func (s *weddingService) AddEvent(ctx context.Context, weddingID uint, secret string, req dto.CreateWeddingEventRequest) (*models.WeddingEvent, error) {
	if err := s.authorize(ctx, weddingID, secret); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name is required")
	}
	event := &models.WeddingEvent{
		WeddingID:   weddingID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		Address:     req.Address,
		DressCode:   req.DressCode,
		SortOrder:   req.SortOrder,
	}
	if req.EventDate != "" {
		d, err := time.Parse(wizard.DateLayout, req.EventDate)
		if err != nil {
			return nil, invalid("eventDate: must be a date like 2026-12-18")
		}
		event.EventDate = &d
	}
	if err := s.weddings.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (s *weddingService) ListQuestions(ctx context.Context, weddingID uint) ([]models.CustomQuestion, error) {
	if _, err := s.load(ctx, weddingID); err != nil {
		return nil, err
	}
	questions, err := s.weddings.ListQuestions(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return nonNil(questions), nil
}

func (s *weddingService) AddQuestion(ctx context.Context, weddingID uint, secret string, req dto.CreateQuestionRequest) (*models.CustomQuestion, error) {
	if err := s.authorize(ctx, weddingID, secret); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, invalid("question is required")
	}
	qt := models.QuestionType(req.QuestionType)
	switch qt {
	case "":
		qt = models.QuestionText
	case models.QuestionText, models.QuestionYesNo:
	case models.QuestionChoice:
		if len(req.Options) < 2 {
			return nil, invalid("choice questions need at least two options")
		}
	default:
		return nil, invalid("questionType must be one of text, choice, yesno")
	}

	q := &models.CustomQuestion{
		WeddingID:    weddingID,
		Question:     strings.TrimSpace(req.Question),
		QuestionType: qt,
		Options:      req.Options,
		Required:     req.Required,
		SortOrder:    req.SortOrder,
	}
	if err := s.weddings.CreateQuestion(ctx, q); err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (s *weddingService) load(ctx context.Context, id uint) (*models.Wedding, error) {
	wedding, err := s.weddings.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrWeddingNotFound, "load wedding")
	}
	return wedding, nil
}

func (s *weddingService) authorize(ctx context.Context, weddingID uint, secret string) error {
	wedding, err := s.load(ctx, weddingID)
	if err != nil {
		return err
	}
	if secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(wedding.AdminSecretLink)) != 1 {
		return ErrForbidden
	}
	return nil
}

func (s *weddingService) details(ctx context.Context, weddingID uint) ([]models.WeddingEvent, []models.CustomQuestion, error) {
	events, err := s.weddings.ListEvents(ctx, weddingID)
	if err != nil {
		return nil, nil, fmt.Errorf("list events: %w", err)
	}
	questions, err := s.weddings.ListQuestions(ctx, weddingID)
	if err != nil {
		return nil, nil, fmt.Errorf("list questions: %w", err)
	}
	return nonNil(events), nonNil(questions), nil
}
