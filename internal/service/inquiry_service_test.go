package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
)

func sampleSubmission() dto.BusinessSubmissionRequest {
	return dto.BusinessSubmissionRequest{
		BusinessName: "Susegad Sounds",
		Category:     "Music",
		ContactName:  "Neil",
		Email:        "neil@example.com",
		Location:     "Assagao",
	}
}

func TestSubmission_ApproveCreatesVendorOnce(t *testing.T) {
	s := newStore(t)
	pub := &recordingPublisher{}
	svc := NewInquiryService(s.inquiries, s.vendors, pub)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, sampleSubmission())
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionPending, sub.Status)

	approved, err := svc.SetStatus(ctx, sub.ID, models.SubmissionApproved)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionApproved, approved.Status)
	require.NotNil(t, approved.VendorID)

	vendor, err := s.vendors.FindByID(ctx, *approved.VendorID)
	require.NoError(t, err)
	assert.Equal(t, "Susegad Sounds", vendor.Name)
	assert.Equal(t, "Music", vendor.Category)

	again, err := svc.SetStatus(ctx, sub.ID, models.SubmissionApproved)
	require.NoError(t, err)
	assert.Equal(t, *approved.VendorID, *again.VendorID)

	vendors, err := s.vendors.List(ctx, models.VendorFilter{})
	require.NoError(t, err)
	assert.Len(t, vendors, 1)
	assert.Equal(t, []string{KeyVendorCreated}, pub.keys())
}

func TestSubmission_RejectAndFilter(t *testing.T) {
	s := newStore(t)
	svc := NewInquiryService(s.inquiries, s.vendors, nil)
	ctx := context.Background()

	a, err := svc.Submit(ctx, sampleSubmission())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, sampleSubmission())
	require.NoError(t, err)

	rejected, err := svc.SetStatus(ctx, a.ID, models.SubmissionRejected)
	require.NoError(t, err)
	assert.Nil(t, rejected.VendorID)

	pending := models.SubmissionPending
	list, err := svc.ListSubmissions(ctx, &pending)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	all, err := svc.ListSubmissions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSubmission_Errors(t *testing.T) {
	s := newStore(t)
	svc := NewInquiryService(s.inquiries, s.vendors, nil)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, 1, models.SubmissionStatus("maybe"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetStatus(ctx, 404, models.SubmissionApproved)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	req := sampleSubmission()
	req.Email = ""
	_, err = svc.Submit(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContacts(t *testing.T) {
	s := newStore(t)
	svc := NewInquiryService(s.inquiries, s.vendors, nil)
	ctx := context.Background()

	_, err := svc.Contact(ctx, dto.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Do you list florists?"})
	require.NoError(t, err)
	_, err = svc.Contact(ctx, dto.ContactRequest{Name: "Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	contacts, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}
