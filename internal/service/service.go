package service

import (
	"context"
	"net/http"

	"github.com/puchie21/curren/internal/models"
	"github.com/puchie21/curren/internal/repository"
)

// Accounts exposes registration and credential checks.
type Accounts interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// Rates resolves exchange-rate snapshots for a base currency.
// Resolution never fails: any provider problem yields the static fallback.
type Rates interface {
	Resolve(ctx context.Context, baseCode string) models.RateSnapshot
}

// Conversions stores and lists conversion records.
type Conversions interface {
	Create(ctx context.Context, in ConversionInput) (models.Conversion, error)
	List(ctx context.Context, userID, page, pageSize int) (models.ConversionPage, error)
}

// RegisterInput is the explicit allowlist of registration fields.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// ConversionInput carries a conversion to persist. Result may be zero,
// in which case it is computed from the current rate snapshot.
type ConversionInput struct {
	UserID   int
	FromCode string
	ToCode   string
	Amount   float64
	Result   float64
}

// RatesConfig configures the live exchange-rate provider. An empty APIKey
// disables live resolution entirely (fallback only).
type RatesConfig struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Accounts
	Rates
	Conversions
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, rc RatesConfig) *Service {
	rates := NewRatesService(rc)
	return &Service{
		Accounts:    NewAccountsService(repos.Users),
		Rates:       rates,
		Conversions: NewConversionsService(repos.Conversions, rates),
	}
}
