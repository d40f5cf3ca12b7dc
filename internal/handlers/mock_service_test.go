package handlers

import (
	"context"

	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerUser  *models.User
	registerErr   error
	loginToken    string
	loginErr      error
	parsePrin     models.Principal
	parseErr      error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastParseToken string
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (string, *models.User, error) {
	m.lastRegister = in
	return m.registerToken, m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, _ string) (string, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (models.Principal, error) {
	m.lastParseToken = token
	return m.parsePrin, m.parseErr
}

func (m *mockAuth) EnsureAdmin(_ context.Context, _, _, _ string) error { return nil }

type mockPosts struct {
	listResp   []models.Post
	listErr    error
	getResp    *models.Post
	getErr     error
	createResp *models.Post
	createErr  error
	updateResp *models.Post
	updateErr  error
	deleteErr  error

	lastQuery     service.PageQuery
	lastID        string
	lastCreate    service.CreatePostInput
	lastUpdate    service.UpdatePostInput
	lastPrincipal models.Principal
}

func (m *mockPosts) List(_ context.Context, q service.PageQuery) ([]models.Post, error) {
	m.lastQuery = q
	return m.listResp, m.listErr
}

func (m *mockPosts) Get(_ context.Context, id string) (*models.Post, error) {
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *mockPosts) Create(_ context.Context, in service.CreatePostInput, p models.Principal) (*models.Post, error) {
	m.lastCreate = in
	m.lastPrincipal = p
	return m.createResp, m.createErr
}

func (m *mockPosts) Update(_ context.Context, id string, in service.UpdatePostInput, p models.Principal) (*models.Post, error) {
	m.lastID = id
	m.lastUpdate = in
	m.lastPrincipal = p
	return m.updateResp, m.updateErr
}

func (m *mockPosts) Delete(_ context.Context, id string, p models.Principal) error {
	m.lastID = id
	m.lastPrincipal = p
	return m.deleteErr
}

type mockUsers struct {
	listResp   []models.User
	listErr    error
	getResp    *models.User
	getErr     error
	updateResp *models.User
	updateErr  error
	deleteErr  error

	lastID        string
	lastUpdate    service.UpdateUserInput
	lastPrincipal models.Principal
}

func (m *mockUsers) List(_ context.Context, q service.PageQuery) ([]models.User, error) {
	return m.listResp, m.listErr
}

func (m *mockUsers) Get(_ context.Context, id string) (*models.User, error) {
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *mockUsers) Update(_ context.Context, id string, in service.UpdateUserInput, p models.Principal) (*models.User, error) {
	m.lastID = id
	m.lastUpdate = in
	m.lastPrincipal = p
	return m.updateResp, m.updateErr
}

func (m *mockUsers) Delete(_ context.Context, id string, p models.Principal) error {
	m.lastID = id
	m.lastPrincipal = p
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
