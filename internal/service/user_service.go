package service

import (
	"context"
	"fmt"
	"strings"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// UserService implements user listing, detail and the self-or-admin gated
// mutations. Deleting a user cascades to its posts at the storage layer.
type UserService struct {
	users repository.Users
	posts repository.Posts
}

func NewUserService(users repository.Users, posts repository.Posts) *UserService {
	return &UserService{users: users, posts: posts}
}

var _ Users = (*UserService)(nil)

// UpdateUserInput carries partial-update fields; nil means "leave unchanged".
// Email and role are immutable through this path.
type UpdateUserInput struct {
	Name      *string
	AvatarURL *string
	Password  *string
}

// List returns one page of users, newest first.
func (s *UserService) List(ctx context.Context, q PageQuery) ([]models.User, error) {
	q = q.Normalize()
	return s.users.List(ctx, q.Limit, q.Offset())
}

// Get returns a user with their posts embedded.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	posts, err := s.posts.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Posts = posts
	return u, nil
}

// Update applies a partial profile update after the existence and
// self-or-admin checks. A supplied password is re-hashed before storage.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput, p models.Principal) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if !CanMutate(p, u.ID) {
		return nil, ErrForbidden
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrValidation)
		}
		u.Name = name
	}
	if in.AvatarURL != nil {
		u.AvatarURL = in.AvatarURL
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes a user after the existence and self-or-admin checks.
// Owned posts are removed by the FK cascade.
func (s *UserService) Delete(ctx context.Context, id string, p models.Principal) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if !CanMutate(p, u.ID) {
		return ErrForbidden
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
