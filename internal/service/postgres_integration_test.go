//go:build integration

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegoanwedding/marketplace/config"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/pkg/database"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "goanwedding_test_db"),
	)

	var err error
	pgDB, err = database.Open(config.DriverPostgres, dsn)
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	code := m.Run()

	dropAll()
	os.Exit(code)
}

// dropAll removes every table, children first.
func dropAll() {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		_ = pgDB.Migrator().DropTable(all[i])
	}
}

func cleanPostgres(t *testing.T) *store {
	t.Helper()
	dropAll()
	require.NoError(t, database.Migrate(pgDB))
	return storeOn(pgDB)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// 40 guests race to submit the same invitation; postgres must keep exactly one.
func TestPostgres_ConcurrentRSVP(t *testing.T) {
	s := cleanPostgres(t)
	w := s.seedWedding(t, "jane-john")
	svc := newRSVPService(s, nil)
	two := 2
	inv := issueOne(t, svc, w.ID, &two)

	const racers = 40
	var wg sync.WaitGroup
	errs := make(chan error, racers)
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), validSubmit(inv.InvitationCode))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrAlreadyResponded):
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, racers-1, dup)

	var rows int64
	require.NoError(t, pgDB.Model(&models.RSVP{}).Where("invitation_id = ?", inv.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	got, err := s.invitations.FindByCode(context.Background(), pgDB, inv.InvitationCode)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationResponded, got.Status)
}

func TestPostgres_DuplicateRSVPInsert(t *testing.T) {
	s := cleanPostgres(t)
	w := s.seedWedding(t, "jane-john")
	svc := newRSVPService(s, nil)
	inv := issueOne(t, svc, w.ID, nil)

	first := &models.RSVP{InvitationID: inv.ID, WeddingID: w.ID, GuestName: "Maria", GuestEmail: "m@x.com", NumberOfGuests: 1}
	require.NoError(t, s.rsvps.Create(context.Background(), pgDB, first))

	again := &models.RSVP{InvitationID: inv.ID, WeddingID: w.ID, GuestName: "Maria", GuestEmail: "m@x.com", NumberOfGuests: 1}
	err := s.rsvps.Create(context.Background(), pgDB, again)

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPostgres_SlugCollision(t *testing.T) {
	s := cleanPostgres(t)
	svc := NewWeddingService(s.weddings, s.invitations, s.rsvps, nil)

	for _, want := range []string{"jane-john", "jane-john-2"} {
		w, err := svc.Create(context.Background(), sampleWeddingRequest())
		require.NoError(t, err)
		assert.Equal(t, want, w.Slug)
	}
}
