package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"github.com/thegoanwedding/marketplace/pkg/database"
	"gorm.io/gorm"
)

type store struct {
	db          *gorm.DB
	vendors     repository.VendorRepository
	categories  repository.CategoryRepository
	blog        repository.BlogRepository
	inquiries   repository.InquiryRepository
	weddings    repository.WeddingRepository
	invitations repository.InvitationRepository
	rsvps       repository.RSVPRepository
}

func newStore(t *testing.T) *store {
	t.Helper()
	db, err := database.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return storeOn(db)
}

func storeOn(db *gorm.DB) *store {
	return &store{
		db:          db,
		vendors:     repository.NewVendorRepository(db),
		categories:  repository.NewCategoryRepository(db),
		blog:        repository.NewBlogRepository(db),
		inquiries:   repository.NewInquiryRepository(db),
		weddings:    repository.NewWeddingRepository(db),
		invitations: repository.NewInvitationRepository(db),
		rsvps:       repository.NewRSVPRepository(db),
	}
}

func (s *store) seedWedding(t *testing.T, slug string) *models.Wedding {
	t.Helper()
	w := &models.Wedding{
		BrideName:       "Jane",
		GroomName:       "John",
		WeddingDate:     time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC),
		CeremonyVenue:   "Se Cathedral",
		CeremonyAddress: "Old Goa",
		CeremonyTime:    "04:00 PM",
		Slug:            slug,
		AdminSecretLink: slug + "-secret",
	}
	require.NoError(t, s.weddings.Create(context.Background(), w))
	return w
}

// --- Recording publisher ---

type published struct {
	key     string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *recordingPublisher) Publish(routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{key: routingKey, payload: payload})
	return p.err
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.key
	}
	return out
}
