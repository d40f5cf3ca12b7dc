package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"blogapi/internal/models"
)

var (
	owner    = models.Principal{ID: "u1", Role: models.RoleUser}
	stranger = models.Principal{ID: "u2", Role: models.RoleUser}
	admin    = models.Principal{ID: "root", Role: models.RoleAdmin}
)

func existingPost(id, ownerID string) *models.Post {
	return &models.Post{
		ID:        id,
		Title:     "t",
		Content:   "c",
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		Author:    &models.UserSummary{ID: ownerID},
	}
}

func TestPostService_Get_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepo{}) // GetByID returns (nil, nil)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_Create_SetsOwnerFromPrincipal(t *testing.T) {
	repo := &mockPostRepo{
		GetByIDFn: func(id string) (*models.Post, error) { return existingPost(id, owner.ID), nil },
	}
	svc := NewPostService(repo)

	p, err := svc.Create(context.Background(), CreatePostInput{Title: "Hello", Content: "World"}, owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(repo.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.createCalls))
	}
	created := repo.createCalls[0]
	if created.OwnerID != owner.ID {
		t.Fatalf("expected owner %q, got %q", owner.ID, created.OwnerID)
	}
	if created.ID == "" {
		t.Fatal("expected generated post id")
	}
	if p.Author == nil {
		t.Fatal("expected author summary on create echo")
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   CreatePostInput
	}{
		{name: "empty title", in: CreatePostInput{Content: "c"}},
		{name: "blank title", in: CreatePostInput{Title: "   ", Content: "c"}},
		{name: "title too long", in: CreatePostInput{Title: strings.Repeat("x", 201), Content: "c"}},
		{name: "empty content", in: CreatePostInput{Title: "t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockPostRepo{}
			svc := NewPostService(repo)
			_, err := svc.Create(context.Background(), tc.in, owner)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.createCalls) != 0 {
				t.Fatalf("expected no Create calls, got %d", len(repo.createCalls))
			}
		})
	}
}

func TestPostService_Update_ForbiddenForStranger(t *testing.T) {
	repo := &mockPostRepo{
		GetByIDFn: func(id string) (*models.Post, error) { return existingPost(id, owner.ID), nil },
	}
	svc := NewPostService(repo)

	title := "new title"
	_, err := svc.Update(context.Background(), "p1", UpdatePostInput{Title: &title}, stranger)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Fatalf("expected no Update calls, got %d", len(repo.updateCalls))
	}
}

// The existence check runs before the policy check: a stranger probing a
// missing id learns "not found", never "forbidden".
func TestPostService_Update_MissingBeatsForbidden(t *testing.T) {
	svc := NewPostService(&mockPostRepo{})
	title := "x"
	_, err := svc.Update(context.Background(), "missing", UpdatePostInput{Title: &title}, stranger)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_Update_PartialSemantics(t *testing.T) {
	repo := &mockPostRepo{
		GetByIDFn: func(id string) (*models.Post, error) {
			p := existingPost(id, owner.ID)
			p.Title = "old title"
			p.Content = "old content"
			return p, nil
		},
	}
	svc := NewPostService(repo)

	content := "new content"
	updated, err := svc.Update(context.Background(), "p1", UpdatePostInput{Content: &content}, owner)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "old title" {
		t.Errorf("title should be unchanged, got %q", updated.Title)
	}
	if updated.Content != "new content" {
		t.Errorf("content not updated, got %q", updated.Content)
	}
	if len(repo.updateCalls) != 1 {
		t.Fatalf("expected 1 Update call, got %d", len(repo.updateCalls))
	}
}

func TestPostService_Update_AdminMayEditAnyPost(t *testing.T) {
	repo := &mockPostRepo{
		GetByIDFn: func(id string) (*models.Post, error) { return existingPost(id, owner.ID), nil },
	}
	svc := NewPostService(repo)

	title := "moderated"
	if _, err := svc.Update(context.Background(), "p1", UpdatePostInput{Title: &title}, admin); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	t.Run("owner deletes own post", func(t *testing.T) {
		repo := &mockPostRepo{
			GetByIDFn: func(id string) (*models.Post, error) { return existingPost(id, owner.ID), nil },
		}
		svc := NewPostService(repo)
		if err := svc.Delete(context.Background(), "p1", owner); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != "p1" {
			t.Fatalf("unexpected delete calls %v", repo.deleteCalls)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := &mockPostRepo{
			GetByIDFn: func(id string) (*models.Post, error) { return existingPost(id, owner.ID), nil },
		}
		svc := NewPostService(repo)
		if err := svc.Delete(context.Background(), "p1", stranger); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing post is not found regardless of principal", func(t *testing.T) {
		svc := NewPostService(&mockPostRepo{})
		if err := svc.Delete(context.Background(), "missing", admin); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPostService_List_NormalizesPaging(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockPostRepo{
		ListFn: func(limit, offset int) ([]models.Post, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := NewPostService(repo)

	if _, err := svc.List(context.Background(), PageQuery{Page: 3, Limit: 5}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != 5 || gotOffset != 10 {
		t.Fatalf("expected limit=5 offset=10, got limit=%d offset=%d", gotLimit, gotOffset)
	}

	if _, err := svc.List(context.Background(), PageQuery{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != DefaultLimit || gotOffset != 0 {
		t.Fatalf("expected defaults limit=%d offset=0, got limit=%d offset=%d", DefaultLimit, gotLimit, gotOffset)
	}
}
