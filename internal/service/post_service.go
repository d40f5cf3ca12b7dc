package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

const maxTitleLen = 200

// PostService implements post CRUD. Mutations run the existence check first
// and the ownership gate second, so 403 and 404 never get conflated.
type PostService struct {
	posts repository.Posts
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts}
}

var _ Posts = (*PostService)(nil)

// CreatePostInput is the payload for post creation.
type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput carries partial-update fields; nil means "leave unchanged".
type UpdatePostInput struct {
	Title   *string
	Content *string
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTitleLen)
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}

// List returns one page of posts, newest first.
func (s *PostService) List(ctx context.Context, q PageQuery) ([]models.Post, error) {
	q = q.Normalize()
	return s.posts.List(ctx, q.Limit, q.Offset())
}

// Get returns a post with its author embedded.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create stores a new post owned by the acting principal.
func (s *PostService) Create(ctx context.Context, in CreatePostInput, p models.Principal) (*models.Post, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validateContent(in.Content); err != nil {
		return nil, err
	}

	post := models.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		OwnerID:   p.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	// Re-read to return the author summary the same way Get does.
	return s.Get(ctx, post.ID)
}

// Update applies a partial update after the existence and ownership checks.
func (s *PostService) Update(ctx context.Context, id string, in UpdatePostInput, p models.Principal) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(p, post.OwnerID) {
		return nil, ErrForbidden
	}

	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if err := validateContent(*in.Content); err != nil {
			return nil, err
		}
		post.Content = *in.Content
	}

	if err := s.posts.Update(ctx, *post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post after the existence and ownership checks.
func (s *PostService) Delete(ctx context.Context, id string, p models.Principal) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(p, post.OwnerID) {
		return ErrForbidden
	}

	deleted, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
