package service

import (
	"context"

	"blogapi/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(u models.User) error
	GetByIDFn    func(id string) (*models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	ListFn       func(limit, offset int) ([]models.User, error)
	UpdateFn     func(u models.User) error
	DeleteFn     func(id string) (bool, error)
	HasAdminFn   func() (bool, error)

	createCalls []models.User
	updateCalls []models.User
	deleteCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) error {
	m.createCalls = append(m.createCalls, u)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) List(_ context.Context, limit, offset int) ([]models.User, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(limit, offset)
}

func (m *mockUserRepo) Update(_ context.Context, u models.User) error {
	m.updateCalls = append(m.updateCalls, u)
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(u)
}

func (m *mockUserRepo) Delete(_ context.Context, id string) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.DeleteFn == nil {
		return true, nil
	}
	return m.DeleteFn(id)
}

func (m *mockUserRepo) HasAdmin(_ context.Context) (bool, error) {
	if m.HasAdminFn == nil {
		return false, nil
	}
	return m.HasAdminFn()
}

// mockPostRepo is a lightweight in-test mock for repository.Posts.
type mockPostRepo struct {
	CreateFn      func(p models.Post) error
	GetByIDFn     func(id string) (*models.Post, error)
	ListFn        func(limit, offset int) ([]models.Post, error)
	ListByOwnerFn func(ownerID string) ([]models.Post, error)
	UpdateFn      func(p models.Post) error
	DeleteFn      func(id string) (bool, error)

	createCalls []models.Post
	updateCalls []models.Post
	deleteCalls []string
}

func (m *mockPostRepo) Create(_ context.Context, p models.Post) error {
	m.createCalls = append(m.createCalls, p)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(p)
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockPostRepo) List(_ context.Context, limit, offset int) ([]models.Post, error) {
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(limit, offset)
}

func (m *mockPostRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Post, error) {
	if m.ListByOwnerFn == nil {
		return nil, nil
	}
	return m.ListByOwnerFn(ownerID)
}

func (m *mockPostRepo) Update(_ context.Context, p models.Post) error {
	m.updateCalls = append(m.updateCalls, p)
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(p)
}

func (m *mockPostRepo) Delete(_ context.Context, id string) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.DeleteFn == nil {
		return true, nil
	}
	return m.DeleteFn(id)
}
