package repository

import (
	"blogapi/internal/models"
	"context"
	"database/sql"
	"errors"
)

// ErrDuplicateEmail reports a users.email uniqueness violation. Create
// returns it instead of the raw driver error so two racing registrations
// both surface as a duplicate, not as a storage failure.
var ErrDuplicateEmail = errors.New("email already exists")

// Users is the persistence contract for user rows.
// Lookups return (nil, nil) when no row matches.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id string) (bool, error)
	HasAdmin(ctx context.Context) (bool, error)
}

// Posts is the persistence contract for post rows. Reads join the owning
// user so responses can embed an author summary.
type Posts interface {
	Create(ctx context.Context, p models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error)
	Update(ctx context.Context, p models.Post) error
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
		Posts: NewPostSQLite(db),
	}
}
