package models

// RateSnapshot is a point-in-time mapping of currency codes to exchange
// rates relative to BaseCode. Ephemeral: recomputed per request, never stored.
type RateSnapshot struct {
	BaseCode          string             `json:"base_code"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}
