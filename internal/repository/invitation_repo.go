package repository

import (
	"context"
	"time"

	"github.com/thegoanwedding/marketplace/internal/models"
	"gorm.io/gorm"
)

type InvitationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, invitation *models.Invitation) error
	FindByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Invitation, error)
	ListByWedding(ctx context.Context, weddingID uint) ([]models.Invitation, error)
	MarkViewed(ctx context.Context, id uint, at time.Time) (bool, error)
	MarkResponded(ctx context.Context, tx *gorm.DB, id uint, at time.Time) error
	GetDB() *gorm.DB
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *invitationRepository) Create(ctx context.Context, tx *gorm.DB, invitation *models.Invitation) error {
	return tx.WithContext(ctx).Omit("Wedding").Create(invitation).Error
}

// FindByCode loads the invitation together with its wedding.
func (r *invitationRepository) FindByCode(ctx context.Context, tx *gorm.DB, code string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := tx.WithContext(ctx).
		Preload("Wedding").
		Where("invitation_code = ?", code).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) ListByWedding(ctx context.Context, weddingID uint) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("id ASC").
		Find(&invitations).Error
	return invitations, err
}

// MarkViewed moves a sent invitation to viewed. The status guard in the
// WHERE clause keeps the transition one-way; it reports whether a row changed.
func (r *invitationRepository) MarkViewed(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, models.InvitationSent).
		Updates(map[string]any{"status": models.InvitationViewed, "viewed_at": at})
	return res.RowsAffected > 0, res.Error
}

func (r *invitationRepository) MarkResponded(ctx context.Context, tx *gorm.DB, id uint, at time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.Invitation{}).
		Where("id = ? AND status <> ?", id, models.InvitationResponded).
		Updates(map[string]any{"status": models.InvitationResponded, "responded_at": at}).Error
}
