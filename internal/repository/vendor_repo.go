package repository

import (
	"context"
	"strings"

	"github.com/thegoanwedding/marketplace/internal/models"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vendor *models.Vendor) error
	CreateBatch(ctx context.Context, tx *gorm.DB, vendors []models.Vendor) error
	FindByID(ctx context.Context, id uint) (*models.Vendor, error)
	List(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id uint) error

	CreateReview(ctx context.Context, tx *gorm.DB, review *models.Review) error
	ListReviews(ctx context.Context, vendorID uint) ([]models.Review, error)
	RefreshRating(ctx context.Context, tx *gorm.DB, vendorID uint) error
	GetDB() *gorm.DB
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *vendorRepository) Create(ctx context.Context, tx *gorm.DB, vendor *models.Vendor) error {
	return tx.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) CreateBatch(ctx context.Context, tx *gorm.DB, vendors []models.Vendor) error {
	return tx.WithContext(ctx).CreateInBatches(&vendors, 100).Error
}

func (r *vendorRepository) FindByID(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error) {
	q := r.db.WithContext(ctx).Model(&models.Vendor{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", like(filter.Location))
	}
	if filter.Search != "" {
		term := like(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", term, term, term)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var vendors []models.Vendor
	if err := q.Order("featured DESC, rating DESC, id ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Vendor{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *vendorRepository) CreateReview(ctx context.Context, tx *gorm.DB, review *models.Review) error {
	return tx.WithContext(ctx).Create(review).Error
}

func (r *vendorRepository) ListReviews(ctx context.Context, vendorID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

// RefreshRating recomputes the vendor's average rating and review count
// from its reviews.
func (r *vendorRepository) RefreshRating(ctx context.Context, tx *gorm.DB, vendorID uint) error {
	var agg struct {
		Count int64
		Avg   float64
	}
	err := tx.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("vendor_id = ?", vendorID).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ?", vendorID).
		Updates(map[string]any{"rating": agg.Avg, "review_count": agg.Count}).Error
}

func like(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
