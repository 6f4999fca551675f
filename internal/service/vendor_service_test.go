package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
)

func newVendorService(s *store, pub EventPublisher) VendorService {
	return NewVendorService(s.vendors, s.categories, pub)
}

func sampleVendor(name, category, location string, rating float64, featured bool) dto.CreateVendorRequest {
	return dto.CreateVendorRequest{
		Name:        name,
		Category:    category,
		Description: name + " serves weddings across Goa",
		Location:    location,
		Rating:      rating,
		Images:      []string{"https://img.example.com/" + name + ".jpg"},
		Featured:    featured,
	}
}

func seedVendors(t *testing.T, svc VendorService) []models.Vendor {
	t.Helper()
	vendors, err := svc.BulkImport(context.Background(), []dto.CreateVendorRequest{
		sampleVendor("Beach Bites", "Catering", "Calangute", 4.2, false),
		sampleVendor("Sunset Frames", "Photography", "Panjim", 4.9, false),
		sampleVendor("Feni Fiesta", "Catering", "Margao", 3.8, true),
		sampleVendor("Konkan Kitchen", "Catering", "North Goa, Calangute", 4.7, false),
	})
	require.NoError(t, err)
	return vendors
}

func names(vendors []models.Vendor) []string {
	out := make([]string, len(vendors))
	for i, v := range vendors {
		out[i] = v.Name
	}
	return out
}

func TestListVendors_OrderAndFilters(t *testing.T) {
	svc := newVendorService(newStore(t), nil)
	seedVendors(t, svc)
	ctx := context.Background()

	all, err := svc.ListVendors(ctx, models.VendorFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Feni Fiesta", "Sunset Frames", "Konkan Kitchen", "Beach Bites"}, names(all))

	catering, err := svc.ListVendors(ctx, models.VendorFilter{Category: "Catering"})
	require.NoError(t, err)
	assert.Len(t, catering, 3)

	calangute, err := svc.ListVendors(ctx, models.VendorFilter{Location: "calangute"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Konkan Kitchen", "Beach Bites"}, names(calangute))

	search, err := svc.ListVendors(ctx, models.VendorFilter{Search: "FRAMES"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunset Frames"}, names(search))

	featured := true
	onlyFeatured, err := svc.ListVendors(ctx, models.VendorFilter{Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, []string{"Feni Fiesta"}, names(onlyFeatured))

	page, err := svc.ListVendors(ctx, models.VendorFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunset Frames", "Konkan Kitchen"}, names(page))

	none, err := svc.ListVendors(ctx, models.VendorFilter{Category: "Florist"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestBulkImport_InvalidEntryInsertsNothing(t *testing.T) {
	svc := newVendorService(newStore(t), nil)

	_, err := svc.BulkImport(context.Background(), []dto.CreateVendorRequest{
		sampleVendor("Beach Bites", "Catering", "Calangute", 4.2, false),
		sampleVendor("", "Catering", "Panjim", 4.0, false),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "vendor 2")

	all, err := svc.ListVendors(context.Background(), models.VendorFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBulkImport_AssignsIDs(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newVendorService(newStore(t), pub)

	vendors := seedVendors(t, svc)

	require.Len(t, vendors, 4)
	for _, v := range vendors {
		assert.NotZero(t, v.ID)
	}
	assert.Equal(t, []string{KeyVendorImported}, pub.keys())
}

func TestVendorCRUD(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newVendorService(newStore(t), pub)
	ctx := context.Background()

	created, err := svc.CreateVendor(ctx, sampleVendor("Beach Bites", "Catering", "Calangute", 0, false))
	require.NoError(t, err)

	got, err := svc.GetVendor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example.com/Beach Bites.jpg"}, []string(got.Images))

	name := "Beach Bites & Bar"
	featured := true
	updated, err := svc.UpdateVendor(ctx, created.ID, dto.UpdateVendorRequest{Name: &name, Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, "Beach Bites & Bar", updated.Name)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Catering", updated.Category)

	empty := ""
	_, err = svc.UpdateVendor(ctx, created.ID, dto.UpdateVendorRequest{Category: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.DeleteVendor(ctx, created.ID))
	_, err = svc.GetVendor(ctx, created.ID)
	assert.ErrorIs(t, err, ErrVendorNotFound)
	assert.ErrorIs(t, svc.DeleteVendor(ctx, created.ID), ErrVendorNotFound)

	assert.Equal(t, []string{KeyVendorCreated, KeyVendorUpdated, KeyVendorDeleted}, pub.keys())
}

func TestAddReview_RefreshesRating(t *testing.T) {
	svc := newVendorService(newStore(t), nil)
	ctx := context.Background()
	v, err := svc.CreateVendor(ctx, sampleVendor("Sunset Frames", "Photography", "Panjim", 0, false))
	require.NoError(t, err)

	_, err = svc.AddReview(ctx, v.ID, dto.CreateReviewRequest{Name: "Ana", Rating: 5, Comment: "Stunning"})
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, v.ID, dto.CreateReviewRequest{Name: "Rui", Rating: 4})
	require.NoError(t, err)

	got, err := svc.GetVendor(ctx, v.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got.Rating, 0.001)
	assert.Equal(t, 2, got.ReviewCount)

	reviews, err := svc.ListReviews(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestAddReview_Errors(t *testing.T) {
	svc := newVendorService(newStore(t), nil)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 404, dto.CreateReviewRequest{Name: "Ana", Rating: 5})
	assert.ErrorIs(t, err, ErrVendorNotFound)

	_, err = svc.AddReview(ctx, 1, dto.CreateReviewRequest{Name: "Ana", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListReviews(ctx, 404)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestCreateCategory(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newVendorService(newStore(t), pub)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Bridal Wear"})
	require.NoError(t, err)
	assert.Equal(t, "bridal-wear", c.Slug)

	_, err = svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Bridal Wear"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, []string{KeyCategoryCreated}, pub.keys())
}
