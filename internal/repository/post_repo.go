package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogapi/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostSQLite(db *sql.DB) *PostSQLite { return &PostSQLite{db: db} }

// Ensure implementation of Posts interface at compile time.
var _ Posts = (*PostSQLite)(nil)

const (
	insertPostSQL = `INSERT INTO posts (id, title, content, user_id, created_at) VALUES (?, ?, ?, ?, ?)`
	updatePostSQL = `UPDATE posts SET title = ?, content = ? WHERE id = ?`
	deletePostSQL = `DELETE FROM posts WHERE id = ?`

	// Reads join the owning user so the author summary comes back in one trip.
	selectPostSQL = `SELECT p.id, p.title, p.content, p.user_id, p.created_at,
		u.id, u.name, u.email, u.avatar_url
		FROM posts p JOIN users u ON u.id = p.user_id`

	selectPostsByOwnerSQL = `SELECT id, title, content, user_id, created_at FROM posts
		WHERE user_id = ? ORDER BY created_at DESC, id DESC`
)

// Create inserts a new post row.
func (r *PostSQLite) Create(ctx context.Context, p models.Post) error {
	_, err := r.db.ExecContext(ctx, insertPostSQL,
		p.ID,
		p.Title,
		p.Content,
		p.OwnerID,
		p.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.ID, err)
	}
	return nil
}

// GetByID fetches a post with its author joined. Returns (nil, nil) if not found.
func (r *PostSQLite) GetByID(ctx context.Context, id string) (*models.Post, error) {
	row := r.db.QueryRowContext(ctx, selectPostSQL+` WHERE p.id = ?`, id)
	p, err := scanJoinedPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	return p, nil
}

// List returns a page of posts, newest first, each with its author joined.
func (r *PostSQLite) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		selectPostSQL+` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select posts page: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, limit)
	for rows.Next() {
		p, err := scanJoinedPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByOwner returns all posts owned by one user, newest first, without the
// author join (the caller already has the owner).
func (r *PostSQLite) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPostsByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select posts of user %q: %w", ownerID, err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.OwnerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists title and content. Ownership and created_at never change.
func (r *PostSQLite) Update(ctx context.Context, p models.Post) error {
	_, err := r.db.ExecContext(ctx, updatePostSQL, p.Title, p.Content, p.ID)
	if err != nil {
		return fmt.Errorf("update post %q: %w", p.ID, err)
	}
	return nil
}

// Delete removes a post row. Reports whether a row was actually deleted.
func (r *PostSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete post %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for post %q: %w", id, err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJoinedPost(row rowScanner) (*models.Post, error) {
	var (
		p      models.Post
		a      models.UserSummary
		avatar sql.NullString
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.OwnerID, &p.CreatedAt,
		&a.ID, &a.Name, &a.Email, &avatar,
	); err != nil {
		return nil, err
	}
	if avatar.Valid {
		a.AvatarURL = &avatar.String
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.Author = &a
	return &p, nil
}
