package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"github.com/thegoanwedding/marketplace/internal/slug"
	"gorm.io/gorm"
)

const (
	defaultVendorLimit = 50
	maxVendorLimit     = 200
)

type VendorService interface {
	ListVendors(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error)
	GetVendor(ctx context.Context, id uint) (*models.Vendor, error)
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*models.Vendor, error)
	UpdateVendor(ctx context.Context, id uint, req dto.UpdateVendorRequest) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, id uint) error
	BulkImport(ctx context.Context, reqs []dto.CreateVendorRequest) ([]models.Vendor, error)

	ListReviews(ctx context.Context, vendorID uint) ([]models.Review, error)
	AddReview(ctx context.Context, vendorID uint, req dto.CreateReviewRequest) (*models.Review, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
}

type vendorService struct {
	vendors    repository.VendorRepository
	categories repository.CategoryRepository
	publisher  EventPublisher
}

func NewVendorService(vendors repository.VendorRepository, categories repository.CategoryRepository, publisher EventPublisher) VendorService {
	return &vendorService{vendors: vendors, categories: categories, publisher: publisher}
}

func (s *vendorService) ListVendors(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultVendorLimit
	}
	if filter.Limit > maxVendorLimit {
		filter.Limit = maxVendorLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	vendors, err := s.vendors.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return nonNil(vendors), nil
}

func (s *vendorService) GetVendor(ctx context.Context, id uint) (*models.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrVendorNotFound, "load vendor")
	}
	return vendor, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*models.Vendor, error) {
	if err := checkVendor(req); err != nil {
		return nil, err
	}
	vendor := vendorFromRequest(req)
	if err := s.vendors.Create(ctx, s.vendors.GetDB(), &vendor); err != nil {
		return nil, fmt.Errorf("insert vendor: %w", err)
	}
	publish(s.publisher, KeyVendorCreated, vendor)
	return &vendor, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, id uint, req dto.UpdateVendorRequest) (*models.Vendor, error) {
	vendor, err := s.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&vendor.Name, req.Name)
	setString(&vendor.Category, req.Category)
	setString(&vendor.Description, req.Description)
	setString(&vendor.Location, req.Location)
	setString(&vendor.PriceRange, req.PriceRange)
	setString(&vendor.Phone, req.Phone)
	setString(&vendor.Email, req.Email)
	setString(&vendor.Website, req.Website)
	setString(&vendor.Instagram, req.Instagram)
	if req.Rating != nil {
		vendor.Rating = *req.Rating
	}
	if req.Images != nil {
		vendor.Images = *req.Images
	}
	if req.Services != nil {
		vendor.Services = *req.Services
	}
	if req.Featured != nil {
		vendor.Featured = *req.Featured
	}
	if vendor.Name == "" || vendor.Category == "" {
		return nil, invalid("name and category cannot be empty")
	}
	if vendor.Rating < 0 || vendor.Rating > 5 {
		return nil, invalid("rating must be between 0 and 5")
	}

	if err := s.vendors.Update(ctx, vendor); err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	publish(s.publisher, KeyVendorUpdated, vendor)
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, id uint) error {
	if err := s.vendors.Delete(ctx, id); err != nil {
		return notFound(err, ErrVendorNotFound, "delete vendor")
	}
	publish(s.publisher, KeyVendorDeleted, map[string]uint{"id": id})
	return nil
}

// BulkImport checks every entry before inserting any, then inserts them all
// in one transaction.
func (s *vendorService) BulkImport(ctx context.Context, reqs []dto.CreateVendorRequest) ([]models.Vendor, error) {
	if len(reqs) == 0 {
		return nil, invalid("at least one vendor is required")
	}
	vendors := make([]models.Vendor, 0, len(reqs))
	for i, r := range reqs {
		if err := checkVendor(r); err != nil {
			return nil, invalid("vendor %d: %s", i+1, err.Error())
		}
		vendors = append(vendors, vendorFromRequest(r))
	}

	err := s.vendors.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vendors.CreateBatch(ctx, tx, vendors)
	})
	if err != nil {
		return nil, fmt.Errorf("bulk insert vendors: %w", err)
	}
	publish(s.publisher, KeyVendorImported, map[string]int{"count": len(vendors)})
	return vendors, nil
}

func (s *vendorService) ListReviews(ctx context.Context, vendorID uint) ([]models.Review, error) {
	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	reviews, err := s.vendors.ListReviews(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return nonNil(reviews), nil
}

// AddReview stores the review and refreshes the vendor's rating and review
// count in the same transaction.
func (s *vendorService) AddReview(ctx context.Context, vendorID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalid("rating must be between 1 and 5")
	}
	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	review := &models.Review{
		VendorID: vendorID,
		Name:     strings.TrimSpace(req.Name),
		Rating:   req.Rating,
		Comment:  strings.TrimSpace(req.Comment),
	}
	err := s.vendors.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vendors.CreateReview(ctx, tx, review); err != nil {
			return err
		}
		return s.vendors.RefreshRating(ctx, tx, vendorID)
	})
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	publish(s.publisher, KeyVendorReviewed, review)
	return review, nil
}

func (s *vendorService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return nonNil(categories), nil
}

func (s *vendorService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	catSlug := slug.Make(req.Slug)
	if catSlug == "" {
		catSlug = slug.Make(name)
	}
	if catSlug == "" {
		return nil, invalid("name must contain letters or digits")
	}

	category := &models.Category{Name: name, Slug: catSlug, Description: req.Description, Icon: req.Icon}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category %q", ErrConflict, name)
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	publish(s.publisher, KeyCategoryCreated, category)
	return category, nil
}

func checkVendor(r dto.CreateVendorRequest) error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Category) == "" {
		return invalid("name and category are required")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return invalid("rating must be between 0 and 5")
	}
	return nil
}

func vendorFromRequest(r dto.CreateVendorRequest) models.Vendor {
	return models.Vendor{
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		Description: r.Description,
		Location:    strings.TrimSpace(r.Location),
		PriceRange:  r.PriceRange,
		Rating:      r.Rating,
		Phone:       r.Phone,
		Email:       strings.TrimSpace(r.Email),
		Website:     strings.TrimSpace(r.Website),
		Instagram:   r.Instagram,
		Images:      nonNil(r.Images),
		Services:    nonNil(r.Services),
		Featured:    r.Featured,
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
