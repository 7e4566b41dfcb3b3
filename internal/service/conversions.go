package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/puchie21/curren/internal/models"
	"github.com/puchie21/curren/internal/repository"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

var (
	errInvalidUserID = errors.New("userId must be a positive integer")
	errInvalidAmount = errors.New("amount must be positive")
)

// ConversionsService stores conversion records and lists them with pagination.
type ConversionsService struct {
	conversions repository.Conversions
	rates       Rates
}

func NewConversionsService(conversions repository.Conversions, rates Rates) *ConversionsService {
	return &ConversionsService{conversions: conversions, rates: rates}
}

var _ Conversions = (*ConversionsService)(nil)

// Create persists a conversion. When Result is zero it is computed from the
// current snapshot for FromCode; an explicit Result is stored verbatim.
func (s *ConversionsService) Create(ctx context.Context, in ConversionInput) (models.Conversion, error) {
	if in.UserID <= 0 {
		return models.Conversion{}, errInvalidUserID
	}
	from, err := normalizeCode(in.FromCode)
	if err != nil {
		return models.Conversion{}, fmt.Errorf("from_code: %w", err)
	}
	to, err := normalizeCode(in.ToCode)
	if err != nil {
		return models.Conversion{}, fmt.Errorf("to_code: %w", err)
	}
	if in.Amount <= 0 {
		return models.Conversion{}, errInvalidAmount
	}

	result := in.Result
	if result == 0 {
		snap := s.rates.Resolve(ctx, from)
		rate, ok := snap.ConversionRates[to]
		if !ok {
			return models.Conversion{}, fmt.Errorf("no rate available for %s", to)
		}
		result = in.Amount * rate
	}

	return s.conversions.Save(ctx, models.Conversion{
		UserID:   in.UserID,
		FromCode: from,
		ToCode:   to,
		Amount:   in.Amount,
		Result:   result,
	})
}

// List returns one page of the user's conversions plus the total count.
// Page defaults to 1 and pageSize to 10 (capped at 100).
func (s *ConversionsService) List(ctx context.Context, userID, page, pageSize int) (models.ConversionPage, error) {
	if userID <= 0 {
		return models.ConversionPage{}, errInvalidUserID
	}
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize
	items, err := s.conversions.ListByUser(ctx, userID, pageSize, offset)
	if err != nil {
		return models.ConversionPage{}, err
	}
	total, err := s.conversions.CountByUser(ctx, userID)
	if err != nil {
		return models.ConversionPage{}, err
	}

	return models.ConversionPage{
		Conversions: items,
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
	}, nil
}

// normalizeCode uppercases a currency code and rejects blanks.
func normalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return "", errors.New("currency code is empty")
	}
	return c, nil
}
