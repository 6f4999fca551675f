package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"gorm.io/gorm"
)

type RSVPService interface {
	IssueInvitations(ctx context.Context, reqs []dto.IssueInvitationRequest) ([]models.Invitation, error)
	GetInvitation(ctx context.Context, code string) (*dto.InvitationView, error)
	Submit(ctx context.Context, req dto.SubmitRSVPRequest) (*models.RSVP, error)
}

type rsvpService struct {
	weddings    repository.WeddingRepository
	invitations repository.InvitationRepository
	rsvps       repository.RSVPRepository
	publisher   EventPublisher
	now         func() time.Time
}

func NewRSVPService(
	weddings repository.WeddingRepository,
	invitations repository.InvitationRepository,
	rsvps repository.RSVPRepository,
	publisher EventPublisher,
) RSVPService {
	return &rsvpService{
		weddings:    weddings,
		invitations: invitations,
		rsvps:       rsvps,
		publisher:   publisher,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// IssueInvitations validates the whole batch before inserting anything, then
// inserts every invitation in one transaction.
func (s *rsvpService) IssueInvitations(ctx context.Context, reqs []dto.IssueInvitationRequest) ([]models.Invitation, error) {
	if len(reqs) == 0 {
		return nil, invalid("at least one invitation is required")
	}
	for i, r := range reqs {
		if r.WeddingID == 0 || strings.TrimSpace(r.GuestName) == "" || strings.TrimSpace(r.GuestEmail) == "" {
			return nil, invalid("invitation %d: wedding_id, guest_name and guest_email are required", i+1)
		}
		if r.MaxGuests != nil && *r.MaxGuests < 0 {
			return nil, invalid("invitation %d: max_guests cannot be negative", i+1)
		}
	}

	checked := map[uint]bool{}
	for _, r := range reqs {
		if checked[r.WeddingID] {
			continue
		}
		if _, err := s.weddings.FindByID(ctx, r.WeddingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrWeddingNotFound, r.WeddingID)
			}
			return nil, fmt.Errorf("load wedding: %w", err)
		}
		checked[r.WeddingID] = true
	}

	now := s.now()
	created := make([]models.Invitation, 0, len(reqs))
	err := s.invitations.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range reqs {
			code, err := NewInvitationCode()
			if err != nil {
				return err
			}
			inv := models.Invitation{
				WeddingID:      r.WeddingID,
				GuestName:      strings.TrimSpace(r.GuestName),
				GuestEmail:     strings.ToLower(strings.TrimSpace(r.GuestEmail)),
				InvitationCode: code,
				MaxGuests:      guestCap(r),
				AllowPlusOne:   r.AllowPlusOne,
				Status:         models.InvitationSent,
				SentAt:         now,
			}
			if err := s.invitations.Create(ctx, tx, &inv); err != nil {
				return fmt.Errorf("insert invitation for %s: %w", inv.GuestEmail, err)
			}
			created = append(created, inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.publisher, KeyInvitationsIssued, map[string]any{"count": len(created), "weddingIds": keys(checked)})
	return created, nil
}

func guestCap(r dto.IssueInvitationRequest) int {
	if r.MaxGuests != nil && *r.MaxGuests > 0 {
		return *r.MaxGuests
	}
	if r.AllowPlusOne {
		return 2
	}
	return 1
}

// GetInvitation loads the guest view and records the first view. A
// responded invitation keeps its status.
func (s *rsvpService) GetInvitation(ctx context.Context, code string) (*dto.InvitationView, error) {
	inv, err := s.findInvitation(ctx, s.invitations.GetDB(), code)
	if err != nil {
		return nil, err
	}

	if inv.Status.CanAdvance(models.InvitationViewed) {
		now := s.now()
		changed, err := s.invitations.MarkViewed(ctx, inv.ID, now)
		if err != nil {
			return nil, fmt.Errorf("mark invitation viewed: %w", err)
		}
		if changed {
			inv.Status = models.InvitationViewed
			inv.ViewedAt = &now
		}
	}

	wedding := inv.Wedding
	if wedding == nil {
		if wedding, err = s.weddings.FindByID(ctx, inv.WeddingID); err != nil {
			return nil, fmt.Errorf("load wedding: %w", err)
		}
	}
	inv.Wedding = nil

	events, err := s.weddings.ListEvents(ctx, wedding.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	questions, err := s.weddings.ListQuestions(ctx, wedding.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return &dto.InvitationView{
		Invitation: *inv,
		Wedding:    wedding.Public(),
		Events:     nonNil(events),
		Questions:  nonNil(questions),
	}, nil
}

// Submit records the single RSVP allowed per invitation. The RSVP row, its
// answers and the status change commit together; the unique index on
// rsvps.invitation_id rejects a concurrent second submission.
func (s *rsvpService) Submit(ctx context.Context, req dto.SubmitRSVPRequest) (*models.RSVP, error) {
	req.InvitationCode = strings.TrimSpace(req.InvitationCode)
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)
	if req.InvitationCode == "" || req.GuestName == "" || req.GuestEmail == "" {
		return nil, invalid("invitationCode, guestName and guestEmail are required")
	}

	inv, err := s.findInvitation(ctx, s.invitations.GetDB(), req.InvitationCode)
	if err != nil {
		return nil, err
	}
	if !inv.Status.CanAdvance(models.InvitationResponded) {
		return nil, ErrAlreadyResponded
	}

	guests := req.NumberOfGuests
	if guests == 0 {
		guests = 1
	}
	limit := inv.MaxGuests
	if limit < 1 {
		limit = 1
	}
	if guests < 1 || guests > limit {
		return nil, invalid("numberOfGuests must be between 1 and %d", limit)
	}

	responses, err := s.collectResponses(ctx, inv.WeddingID, req.Responses)
	if err != nil {
		return nil, err
	}

	rsvp := &models.RSVP{
		InvitationID:        inv.ID,
		WeddingID:           inv.WeddingID,
		GuestName:           req.GuestName,
		GuestEmail:          req.GuestEmail,
		GuestPhone:          strings.TrimSpace(req.GuestPhone),
		AttendingCeremony:   req.AttendingCeremony,
		AttendingReception:  req.AttendingReception,
		NumberOfGuests:      guests,
		CeremonyType:        req.CeremonyType,
		CeremonyTime:        req.CeremonyTime,
		ReceptionTime:       req.ReceptionTime,
		DietaryRestrictions: strings.TrimSpace(req.DietaryRestrictions),
		Message:             strings.TrimSpace(req.Message),
	}

	err = s.rsvps.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.rsvps.ExistsForInvitation(ctx, tx, inv.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyResponded
		}

		if err := s.rsvps.Create(ctx, tx, rsvp); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyResponded
			}
			return fmt.Errorf("insert rsvp: %w", err)
		}

		for i := range responses {
			responses[i].RSVPID = rsvp.ID
		}
		if err := s.rsvps.CreateResponses(ctx, tx, responses); err != nil {
			return fmt.Errorf("insert rsvp responses: %w", err)
		}

		return s.invitations.MarkResponded(ctx, tx, inv.ID, s.now())
	})
	if err != nil {
		return nil, err
	}

	rsvp.Responses = responses
	publish(s.publisher, KeyRSVPSubmitted, rsvp)
	return rsvp, nil
}

func (s *rsvpService) findInvitation(ctx context.Context, tx *gorm.DB, code string) (*models.Invitation, error) {
	inv, err := s.invitations.FindByCode(ctx, tx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("load invitation: %w", err)
	}
	return inv, nil
}

// collectResponses keeps non-empty answers to questions of this wedding,
// ordered by question id.
func (s *rsvpService) collectResponses(ctx context.Context, weddingID uint, answers map[string]string) ([]models.RSVPResponse, error) {
	if len(answers) == 0 {
		return nil, nil
	}
	questions, err := s.weddings.ListQuestions(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	known := make(map[uint]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	var responses []models.RSVPResponse
	for key, answer := range answers {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil || !known[uint(id)] {
			return nil, invalid("unknown question %q", key)
		}
		responses = append(responses, models.RSVPResponse{QuestionID: uint(id), Answer: answer})
	}
	sort.Slice(responses, func(i, j int) bool { return responses[i].QuestionID < responses[j].QuestionID })
	return responses, nil
}

func keys(m map[uint]bool) []uint {
	out := make([]uint, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
