// Package server assembles the echo application: middleware stack,
// repositories, services and routes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/thegoanwedding/marketplace/config"
	"github.com/thegoanwedding/marketplace/internal/auth"
	"github.com/thegoanwedding/marketplace/internal/handler"
	"github.com/thegoanwedding/marketplace/internal/logging"
	"github.com/thegoanwedding/marketplace/internal/middleware"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"github.com/thegoanwedding/marketplace/internal/service"
	"github.com/thegoanwedding/marketplace/internal/validation"
	"gorm.io/gorm"
)

type Server struct {
	Echo  *echo.Echo
	Cache *middleware.ResponseCache

	port string
}

// New wires the application over db. publisher may be nil when no broker is
// configured.
func New(cfg *config.Config, db *gorm.DB, publisher service.EventPublisher) (*Server, error) {
	tokens, err := auth.ParseTokens(cfg.AdminTokens)
	if err != nil {
		return nil, fmt.Errorf("parse ADMIN_TOKENS: %w", err)
	}

	// Repositories
	vendorRepo := repository.NewVendorRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	weddingRepo := repository.NewWeddingRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)

	// Services
	vendorSvc := service.NewVendorService(vendorRepo, categoryRepo, publisher)
	blogSvc := service.NewBlogService(blogRepo, publisher)
	inquirySvc := service.NewInquiryService(inquiryRepo, vendorRepo, publisher)
	weddingSvc := service.NewWeddingService(weddingRepo, invitationRepo, rsvpRepo, publisher)
	rsvpSvc := service.NewRSVPService(weddingRepo, invitationRepo, rsvpRepo, publisher)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
	e.Use(middleware.RequestLogger(logging.Component("http")))
	e.Use(echoMw.Recover())
	e.Use(middleware.CORS())
	e.Use(echoMw.BodyLimit("2M"))

	cache := middleware.NewResponseCache(cfg.CacheTTL)
	guards := handler.Guards{
		Admin:    func(s auth.Scope) echo.MiddlewareFunc { return middleware.RequireScope(tokens, s) },
		Identify: middleware.IdentifyAdmin(tokens),
		Cache:    cache.Middleware(),
		Limit:    middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	e.GET("/health", health(db))

	handler.NewVendorHandler(vendorSvc).RegisterRoutes(e, guards)
	handler.NewBlogHandler(blogSvc).RegisterRoutes(e, guards)
	handler.NewInquiryHandler(inquirySvc).RegisterRoutes(e, guards)
	handler.NewWeddingHandler(weddingSvc, cfg.PublicURL).RegisterRoutes(e, guards)
	handler.NewRSVPHandler(rsvpSvc, cfg.PublicURL).RegisterRoutes(e, guards)

	return &Server{Echo: e, Cache: cache, port: cfg.ServerPort}, nil
}

func health(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "service": "goanwedding"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "goanwedding"})
	}
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	l := logging.Component("server")
	l.Info().Str("port", s.port).Msg("starting")
	if err := s.Echo.Start(":" + s.port); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
