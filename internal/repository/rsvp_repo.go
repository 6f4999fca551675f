package repository

import (
	"context"

	"github.com/thegoanwedding/marketplace/internal/models"
	"gorm.io/gorm"
)

type RSVPRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rsvp *models.RSVP) error
	CreateResponses(ctx context.Context, tx *gorm.DB, responses []models.RSVPResponse) error
	ExistsForInvitation(ctx context.Context, tx *gorm.DB, invitationID uint) (bool, error)
	ListByWedding(ctx context.Context, weddingID uint) ([]models.RSVP, error)
	GetDB() *gorm.DB
}

type rsvpRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) RSVPRepository {
	return &rsvpRepository{db: db}
}

func (r *rsvpRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *rsvpRepository) Create(ctx context.Context, tx *gorm.DB, rsvp *models.RSVP) error {
	return tx.WithContext(ctx).Omit("Responses").Create(rsvp).Error
}

func (r *rsvpRepository) CreateResponses(ctx context.Context, tx *gorm.DB, responses []models.RSVPResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&responses).Error
}

func (r *rsvpRepository) ExistsForInvitation(ctx context.Context, tx *gorm.DB, invitationID uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.RSVP{}).
		Where("invitation_id = ?", invitationID).
		Count(&count).Error
	return count > 0, err
}

func (r *rsvpRepository) ListByWedding(ctx context.Context, weddingID uint) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	err := r.db.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("question_id ASC") }).
		Where("wedding_id = ?", weddingID).
		Order("id ASC").
		Find(&rsvps).Error
	return rsvps, err
}
