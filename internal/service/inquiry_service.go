package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"gorm.io/gorm"
)

// InquiryService handles vendor self-signups and contact messages.
type InquiryService interface {
	Submit(ctx context.Context, req dto.BusinessSubmissionRequest) (*models.BusinessSubmission, error)
	ListSubmissions(ctx context.Context, status *models.SubmissionStatus) ([]models.BusinessSubmission, error)
	SetStatus(ctx context.Context, id uint, status models.SubmissionStatus) (*models.BusinessSubmission, error)

	Contact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

type inquiryService struct {
	inquiries repository.InquiryRepository
	vendors   repository.VendorRepository
	publisher EventPublisher
}

func NewInquiryService(inquiries repository.InquiryRepository, vendors repository.VendorRepository, publisher EventPublisher) InquiryService {
	return &inquiryService{inquiries: inquiries, vendors: vendors, publisher: publisher}
}

func (s *inquiryService) Submit(ctx context.Context, req dto.BusinessSubmissionRequest) (*models.BusinessSubmission, error) {
	if strings.TrimSpace(req.BusinessName) == "" || strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.ContactName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, invalid("businessName, category, contactName and email are required")
	}
	sub := &models.BusinessSubmission{
		BusinessName: strings.TrimSpace(req.BusinessName),
		Category:     strings.TrimSpace(req.Category),
		ContactName:  strings.TrimSpace(req.ContactName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Location:     strings.TrimSpace(req.Location),
		Description:  req.Description,
		Website:      strings.TrimSpace(req.Website),
		Status:       models.SubmissionPending,
	}
	if err := s.inquiries.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

func (s *inquiryService) ListSubmissions(ctx context.Context, status *models.SubmissionStatus) ([]models.BusinessSubmission, error) {
	subs, err := s.inquiries.ListSubmissions(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return nonNil(subs), nil
}

// SetStatus moves a submission between states. The first approval creates
// the vendor listing in the same transaction.
func (s *inquiryService) SetStatus(ctx context.Context, id uint, status models.SubmissionStatus) (*models.BusinessSubmission, error) {
	switch status {
	case models.SubmissionPending, models.SubmissionApproved, models.SubmissionRejected:
	default:
		return nil, invalid("status must be one of pending, approved, rejected")
	}

	var (
		sub     *models.BusinessSubmission
		created *models.Vendor
	)
	err := s.inquiries.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		sub, err = s.inquiries.FindSubmission(ctx, tx, id)
		if err != nil {
			return notFound(err, ErrSubmissionNotFound, "load submission")
		}

		if status == models.SubmissionApproved && sub.VendorID == nil {
			vendor := models.Vendor{
				Name:        sub.BusinessName,
				Category:    sub.Category,
				Description: sub.Description,
				Location:    sub.Location,
				Phone:       sub.Phone,
				Email:       sub.Email,
				Website:     sub.Website,
				Images:      []string{},
				Services:    []string{},
			}
			if err := s.vendors.Create(ctx, tx, &vendor); err != nil {
				return fmt.Errorf("create vendor from submission: %w", err)
			}
			sub.VendorID = &vendor.ID
			created = &vendor
		}

		sub.Status = status
		return s.inquiries.UpdateSubmission(ctx, tx, sub)
	})
	if err != nil {
		return nil, err
	}

	if created != nil {
		publish(s.publisher, KeyVendorCreated, created)
	}
	return sub, nil
}

func (s *inquiryService) Contact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, invalid("name, email and message are required")
	}
	c := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if err := s.inquiries.CreateContact(ctx, c); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return c, nil
}

func (s *inquiryService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.inquiries.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return nonNil(contacts), nil
}
