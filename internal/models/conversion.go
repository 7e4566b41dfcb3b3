package models

import "time"

// Conversion is a single stored currency conversion.
type Conversion struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	FromCode  string    `json:"from_code"` // ISO 4217, e.g. "USD"
	ToCode    string    `json:"to_code"`
	Amount    float64   `json:"amount"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversionPage is the paginated listing envelope for GET /conversions.
type ConversionPage struct {
	Conversions []Conversion `json:"conversions"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	Total       int          `json:"total"`
}
