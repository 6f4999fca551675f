package repository

import (
	"context"

	"github.com/thegoanwedding/marketplace/internal/models"
	"gorm.io/gorm"
)

type WeddingRepository interface {
	Create(ctx context.Context, wedding *models.Wedding) error
	FindByID(ctx context.Context, id uint) (*models.Wedding, error)
	FindBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	FindBySecret(ctx context.Context, secret string) (*models.Wedding, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	CreateEvent(ctx context.Context, event *models.WeddingEvent) error
	ListEvents(ctx context.Context, weddingID uint) ([]models.WeddingEvent, error)
	CreateQuestion(ctx context.Context, q *models.CustomQuestion) error
	ListQuestions(ctx context.Context, weddingID uint) ([]models.CustomQuestion, error)
}

type weddingRepository struct {
	db *gorm.DB
}

func NewWeddingRepository(db *gorm.DB) WeddingRepository {
	return &weddingRepository{db: db}
}

func (r *weddingRepository) Create(ctx context.Context, wedding *models.Wedding) error {
	return r.db.WithContext(ctx).Create(wedding).Error
}

func (r *weddingRepository) FindByID(ctx context.Context, id uint) (*models.Wedding, error) {
	var wedding models.Wedding
	if err := r.db.WithContext(ctx).First(&wedding, id).Error; err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *weddingRepository) FindBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *weddingRepository) FindBySecret(ctx context.Context, secret string) (*models.Wedding, error) {
	return r.findOne(ctx, "admin_secret_link = ?", secret)
}

func (r *weddingRepository) findOne(ctx context.Context, query string, arg any) (*models.Wedding, error) {
	var wedding models.Wedding
	if err := r.db.WithContext(ctx).Where(query, arg).First(&wedding).Error; err != nil {
		return nil, err
	}
	return &wedding, nil
}

func (r *weddingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Wedding{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *weddingRepository) CreateEvent(ctx context.Context, event *models.WeddingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *weddingRepository) ListEvents(ctx context.Context, weddingID uint) ([]models.WeddingEvent, error) {
	var events []models.WeddingEvent
	err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("sort_order ASC, id ASC").
		Find(&events).Error
	return events, err
}

func (r *weddingRepository) CreateQuestion(ctx context.Context, q *models.CustomQuestion) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *weddingRepository) ListQuestions(ctx context.Context, weddingID uint) ([]models.CustomQuestion, error) {
	var questions []models.CustomQuestion
	err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("sort_order ASC, id ASC").
		Find(&questions).Error
	return questions, err
}
