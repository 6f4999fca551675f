package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thegoanwedding/marketplace/internal/dto"
	"github.com/thegoanwedding/marketplace/internal/models"
	"github.com/thegoanwedding/marketplace/internal/repository"
	"github.com/thegoanwedding/marketplace/internal/slug"
	"gorm.io/gorm"
)

type BlogService interface {
	List(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error)
	// Get resolves a numeric id or a slug. Drafts are hidden unless
	// includeDrafts is set.
	Get(ctx context.Context, idOrSlug string, includeDrafts bool) (*models.BlogPost, error)
	Create(ctx context.Context, req dto.BlogPostRequest) (*models.BlogPost, error)
	Update(ctx context.Context, id uint, req dto.BlogPostRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, id uint) error
}

type blogService struct {
	posts     repository.BlogRepository
	publisher EventPublisher
	now       func() time.Time
}

func NewBlogService(posts repository.BlogRepository, publisher EventPublisher) BlogService {
	return &blogService{posts: posts, publisher: publisher, now: time.Now}
}

func (s *blogService) List(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error) {
	posts, err := s.posts.List(ctx, !includeDrafts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return nonNil(posts), nil
}

func (s *blogService) Get(ctx context.Context, idOrSlug string, includeDrafts bool) (*models.BlogPost, error) {
	var (
		post *models.BlogPost
		err  error
	)
	if id, perr := strconv.ParseUint(idOrSlug, 10, 64); perr == nil {
		post, err = s.posts.FindByID(ctx, uint(id))
	} else {
		post, err = s.posts.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, notFound(err, ErrPostNotFound, "load post")
	}
	if !post.Published && !includeDrafts {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *blogService) Create(ctx context.Context, req dto.BlogPostRequest) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	if err := s.apply(post, req); err != nil {
		return nil, err
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, s.writeErr(err, post.Slug, "insert post")
	}
	publish(s.publisher, KeyBlogCreated, post)
	return post, nil
}

func (s *blogService) Update(ctx context.Context, id uint, req dto.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPostNotFound, "load post")
	}
	if err := s.apply(post, req); err != nil {
		return nil, err
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, s.writeErr(err, post.Slug, "update post")
	}
	publish(s.publisher, KeyBlogUpdated, post)
	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id uint) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return notFound(err, ErrPostNotFound, "delete post")
	}
	publish(s.publisher, KeyBlogDeleted, map[string]uint{"id": id})
	return nil
}

// apply copies the request onto post. PublishedAt is stamped the first time
// a post is published and cleared when it goes back to draft.
func (s *blogService) apply(post *models.BlogPost, req dto.BlogPostRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Content) == "" {
		return invalid("title and content are required")
	}
	postSlug := slug.Make(req.Slug)
	if postSlug == "" {
		postSlug = slug.Make(title)
	}
	if postSlug == "" {
		return invalid("title must contain letters or digits")
	}

	post.Title = title
	post.Slug = postSlug
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.Author = strings.TrimSpace(req.Author)
	post.Category = strings.TrimSpace(req.Category)
	post.Tags = nonNil(req.Tags)
	post.ImageURL = strings.TrimSpace(req.ImageURL)

	switch {
	case req.Published && post.PublishedAt == nil:
		at := s.now().UTC()
		post.PublishedAt = &at
	case !req.Published:
		post.PublishedAt = nil
	}
	post.Published = req.Published
	return nil
}

func (s *blogService) writeErr(err error, postSlug, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: slug %q", ErrConflict, postSlug)
	}
	return fmt.Errorf("%s: %w", op, err)
}
