package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/puchie21/curren/internal/models"
	"github.com/puchie21/curren/internal/service"
)

// ---- Service Mocks ----

type mockAccounts struct {
	registerUser *models.User
	registerErr  error
	loginUser    *models.User
	loginErr     error

	lastRegister      service.RegisterInput
	lastLoginUsername string
	lastLoginPassword string
}

func (m *mockAccounts) Register(_ context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}

func (m *mockAccounts) Login(_ context.Context, username, password string) (*models.User, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginErr
}

type mockRates struct {
	snap     models.RateSnapshot
	lastBase string
}

func (m *mockRates) Resolve(_ context.Context, base string) models.RateSnapshot {
	m.lastBase = base
	snap := m.snap
	if snap.BaseCode == "" {
		snap.BaseCode = base
	}
	return snap
}

type mockConversions struct {
	created   models.Conversion
	createErr error
	page      models.ConversionPage
	listErr   error

	lastCreate   service.ConversionInput
	lastUserID   int
	lastPage     int
	lastPageSize int
}

func (m *mockConversions) Create(_ context.Context, in service.ConversionInput) (models.Conversion, error) {
	m.lastCreate = in
	return m.created, m.createErr
}

func (m *mockConversions) List(_ context.Context, userID, page, pageSize int) (models.ConversionPage, error) {
	m.lastUserID = userID
	m.lastPage = page
	m.lastPageSize = pageSize
	return m.page, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
