package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"blogapi/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05" // SQLite TIMESTAMP format

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite { return &UserSQLite{db: db} }

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, name, email, password_hash, role, avatar_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, name, email, password_hash, role, avatar_url, created_at FROM users`
	updateUserSQL = `UPDATE users SET name = ?, password_hash = ?, avatar_url = ? WHERE id = ?`
	deleteUserSQL = `DELETE FROM users WHERE id = ?`
	countAdminSQL = `SELECT COUNT(1) FROM users WHERE role = ?`
)

// Create inserts a new user row.
func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.AvatarURL,
		u.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		if isUniqueEmailViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, u.Email)
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// isUniqueEmailViolation matches the driver's message for the users.email
// UNIQUE constraint, keeping this package free of a direct driver import.
func isUniqueEmailViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE id = ?`, id)
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE email = ?`, email)
}

func (r *UserSQLite) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		u      models.User
		avatar sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &avatar, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %v: %w", arg, err)
	}
	if avatar.Valid {
		u.AvatarURL = &avatar.String
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// List returns a page of users, newest first. The id tiebreak keeps the
// order deterministic when several rows share a created_at second.
func (r *UserSQLite) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		selectUserSQL+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select users page: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, limit)
	for rows.Next() {
		var (
			u      models.User
			avatar sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &avatar, &u.CreatedAt); err != nil {
			return nil, err
		}
		if avatar.Valid {
			u.AvatarURL = &avatar.String
		}
		u.CreatedAt = u.CreatedAt.UTC()
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the mutable columns (name, password hash, avatar).
// Email and role are immutable here.
func (r *UserSQLite) Update(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, updateUserSQL, u.Name, u.PasswordHash, u.AvatarURL, u.ID)
	if err != nil {
		return fmt.Errorf("update user %q: %w", u.ID, err)
	}
	return nil
}

// Delete removes a user row; owned posts go with it via the FK cascade.
// Reports whether a row was actually deleted.
func (r *UserSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete user %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for user %q: %w", id, err)
	}
	return n > 0, nil
}

// HasAdmin reports whether any ADMIN account exists (used by the seed step).
func (r *UserSQLite) HasAdmin(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countAdminSQL, models.RoleAdmin).Scan(&n); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return n > 0, nil
}
