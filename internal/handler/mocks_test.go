package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/validation"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func statusOf(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}

// --- Mock VendorService ---

type mockVendorService struct {
	listFn           func(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error)
	getFn            func(ctx context.Context, id uint) (*models.Vendor, error)
	createFn         func(ctx context.Context, req dto.CreateVendorRequest) (*models.Vendor, error)
	updateFn         func(ctx context.Context, id uint, req dto.UpdateVendorRequest) (*models.Vendor, error)
	deleteFn         func(ctx context.Context, id uint) error
	bulkFn           func(ctx context.Context, reqs []dto.CreateVendorRequest) ([]models.Vendor, error)
	listReviewsFn    func(ctx context.Context, vendorID uint) ([]models.Review, error)
	addReviewFn      func(ctx context.Context, vendorID uint, req dto.CreateReviewRequest) (*models.Review, error)
	listCategoriesFn func(ctx context.Context) ([]models.Category, error)
	createCategoryFn func(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
}

func (m *mockVendorService) ListVendors(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error) {
	return m.listFn(ctx, filter)
}
func (m *mockVendorService) GetVendor(ctx context.Context, id uint) (*models.Vendor, error) {
	return m.getFn(ctx, id)
}
func (m *mockVendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*models.Vendor, error) {
	return m.createFn(ctx, req)
}
func (m *mockVendorService) UpdateVendor(ctx context.Context, id uint, req dto.UpdateVendorRequest) (*models.Vendor, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockVendorService) DeleteVendor(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockVendorService) BulkImport(ctx context.Context, reqs []dto.CreateVendorRequest) ([]models.Vendor, error) {
	return m.bulkFn(ctx, reqs)
}
func (m *mockVendorService) ListReviews(ctx context.Context, vendorID uint) ([]models.Review, error) {
	return m.listReviewsFn(ctx, vendorID)
}
func (m *mockVendorService) AddReview(ctx context.Context, vendorID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	return m.addReviewFn(ctx, vendorID, req)
}
func (m *mockVendorService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listCategoriesFn(ctx)
}
func (m *mockVendorService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	return m.createCategoryFn(ctx, req)
}

// --- Mock BlogService ---

type mockBlogService struct {
	listFn   func(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error)
	getFn    func(ctx context.Context, idOrSlug string, includeDrafts bool) (*models.BlogPost, error)
	createFn func(ctx context.Context, req dto.BlogPostRequest) (*models.BlogPost, error)
	updateFn func(ctx context.Context, id uint, req dto.BlogPostRequest) (*models.BlogPost, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockBlogService) List(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error) {
	return m.listFn(ctx, includeDrafts)
}
func (m *mockBlogService) Get(ctx context.Context, idOrSlug string, includeDrafts bool) (*models.BlogPost, error) {
	return m.getFn(ctx, idOrSlug, includeDrafts)
}
func (m *mockBlogService) Create(ctx context.Context, req dto.BlogPostRequest) (*models.BlogPost, error) {
	return m.createFn(ctx, req)
}
func (m *mockBlogService) Update(ctx context.Context, id uint, req dto.BlogPostRequest) (*models.BlogPost, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockBlogService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock InquiryService ---

type mockInquiryService struct {
	submitFn       func(ctx context.Context, req dto.BusinessSubmissionRequest) (*models.BusinessSubmission, error)
	listFn         func(ctx context.Context, status *models.SubmissionStatus) ([]models.BusinessSubmission, error)
	setStatusFn    func(ctx context.Context, id uint, status models.SubmissionStatus) (*models.BusinessSubmission, error)
	contactFn      func(ctx context.Context, req dto.ContactRequest) (*models.Contact, error)
	listContactsFn func(ctx context.Context) ([]models.Contact, error)
}

func (m *mockInquiryService) Submit(ctx context.Context, req dto.BusinessSubmissionRequest) (*models.BusinessSubmission, error) {
	return m.submitFn(ctx, req)
}
func (m *mockInquiryService) ListSubmissions(ctx context.Context, status *models.SubmissionStatus) ([]models.BusinessSubmission, error) {
	return m.listFn(ctx, status)
}
func (m *mockInquiryService) SetStatus(ctx context.Context, id uint, status models.SubmissionStatus) (*models.BusinessSubmission, error) {
	return m.setStatusFn(ctx, id, status)
}
func (m *mockInquiryService) Contact(ctx context.Context, req dto.ContactRequest) (*models.Contact, error) {
	return m.contactFn(ctx, req)
}
func (m *mockInquiryService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return m.listContactsFn(ctx)
}

// --- Mock WeddingService ---

type mockWeddingService struct {
	createFn        func(ctx context.Context, req dto.CreateWeddingRequest) (*models.Wedding, error)
	getBySlugFn     func(ctx context.Context, slug string) (*dto.WeddingPage, error)
	findBySecretFn  func(ctx context.Context, secret string) (*models.Wedding, error)
	dashboardFn     func(ctx context.Context, secret string) (*dto.Dashboard, error)
	listEventsFn    func(ctx context.Context, weddingID uint) ([]models.WeddingEvent, error)
	addEventFn      func(ctx context.Context, weddingID uint, secret string, req dto.CreateWeddingEventRequest) (*models.WeddingEvent, error)
	listQuestionsFn func(ctx context.Context, weddingID uint) ([]models.CustomQuestion, error)
	addQuestionFn   func(ctx context.Context, weddingID uint, secret string, req dto.CreateQuestionRequest) (*models.CustomQuestion, error)
}

func (m *mockWeddingService) Create(ctx context.Context, req dto.CreateWeddingRequest) (*models.Wedding, error) {
	return m.createFn(ctx, req)
}
func (m *mockWeddingService) GetBySlug(ctx context.Context, slug string) (*dto.WeddingPage, error) {
	return m.getBySlugFn(ctx, slug)
}
func (m *mockWeddingService) FindBySecret(ctx context.Context, secret string) (*models.Wedding, error) {
	return m.findBySecretFn(ctx, secret)
}
func (m *mockWeddingService) Dashboard(ctx context.Context, secret string) (*dto.Dashboard, error) {
	return m.dashboardFn(ctx, secret)
}
func (m *mockWeddingService) ListEvents(ctx context.Context, weddingID uint) ([]models.WeddingEvent, error) {
	return m.listEventsFn(ctx, weddingID)
}
func (m *mockWeddingService) AddEvent(ctx context.Context, weddingID uint, secret string, req dto.CreateWeddingEventRequest) (*models.WeddingEvent, error) {
	return m.addEventFn(ctx, weddingID, secret, req)
}
func (m *mockWeddingService) ListQuestions(ctx context.Context, weddingID uint) ([]models.CustomQuestion, error) {
	return m.listQuestionsFn(ctx, weddingID)
}
func (m *mockWeddingService) AddQuestion(ctx context.Context, weddingID uint, secret string, req dto.CreateQuestionRequest) (*models.CustomQuestion, error) {
	return m.addQuestionFn(ctx, weddingID, secret, req)
}

// --- Mock RSVPService ---

type mockRSVPService struct {
	issueFn  func(ctx context.Context, reqs []dto.IssueInvitationRequest) ([]models.Invitation, error)
	getFn    func(ctx context.Context, code string) (*dto.InvitationView, error)
	submitFn func(ctx context.Context, req dto.SubmitRSVPRequest) (*models.RSVP, error)
}

func (m *mockRSVPService) IssueInvitations(ctx context.Context, reqs []dto.IssueInvitationRequest) ([]models.Invitation, error) {
	return m.issueFn(ctx, reqs)
}
func (m *mockRSVPService) GetInvitation(ctx context.Context, code string) (*dto.InvitationView, error) {
	return m.getFn(ctx, code)
}
func (m *mockRSVPService) Submit(ctx context.Context, req dto.SubmitRSVPRequest) (*models.RSVP, error) {
	return m.submitFn(ctx, req)
}
