package service

import (
	"context"
	"errors"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// Domain errors shared across services. Handlers map these onto HTTP codes
// with errors.Is, so everything below stays transport-agnostic.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Authorization handles registration, login and token verification.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (models.Principal, error)
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

// Users exposes user CRUD with the self-or-admin gate on mutations.
type Users interface {
	List(ctx context.Context, q PageQuery) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput, p models.Principal) (*models.User, error)
	Delete(ctx context.Context, id string, p models.Principal) error
}

// Posts exposes post CRUD with the owner-or-admin gate on mutations.
type Posts interface {
	List(ctx context.Context, q PageQuery) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, in CreatePostInput, p models.Principal) (*models.Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput, p models.Principal) (*models.Post, error)
	Delete(ctx context.Context, id string, p models.Principal) error
}

// Service aggregates all sub-services behind one value handed to the HTTP layer.
type Service struct {
	Authorization
	Users
	Posts
}

// AuthConfig carries the token-signing parameters from the config file.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Users:         NewUserService(repos.Users, repos.Posts),
		Posts:         NewPostService(repos.Posts),
	}
}
