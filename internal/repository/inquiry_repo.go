package repository

import (
	"context"

	"github.com/thegoanwedding/marketplace/internal/models"
	"gorm.io/gorm"
)

// InquiryRepository stores inbound business submissions and contact messages.
type InquiryRepository interface {
	CreateSubmission(ctx context.Context, s *models.BusinessSubmission) error
	ListSubmissions(ctx context.Context, status *models.SubmissionStatus) ([]models.BusinessSubmission, error)
	FindSubmission(ctx context.Context, tx *gorm.DB, id uint) (*models.BusinessSubmission, error)
	UpdateSubmission(ctx context.Context, tx *gorm.DB, s *models.BusinessSubmission) error

	CreateContact(ctx context.Context, c *models.Contact) error
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetDB() *gorm.DB
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *inquiryRepository) CreateSubmission(ctx context.Context, s *models.BusinessSubmission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *inquiryRepository) ListSubmissions(ctx context.Context, status *models.SubmissionStatus) ([]models.BusinessSubmission, error) {
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var subs []models.BusinessSubmission
	if err := q.Order("id DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *inquiryRepository) FindSubmission(ctx context.Context, tx *gorm.DB, id uint) (*models.BusinessSubmission, error) {
	var s models.BusinessSubmission
	if err := tx.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *inquiryRepository) UpdateSubmission(ctx context.Context, tx *gorm.DB, s *models.BusinessSubmission) error {
	return tx.WithContext(ctx).Save(s).Error
}

func (r *inquiryRepository) CreateContact(ctx context.Context, c *models.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *inquiryRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
