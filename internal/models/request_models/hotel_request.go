package request_models

import (
	"encoding/json"
	"strconv"
)

type HotelSearchRequest struct {
	Destination     string `json:"destination"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	UseCustomBudget bool   `json:"useCustomBudget"`
	// The frontend sends budgetHotels either as a number or a numeric
	// string depending on which form control produced it.
	BudgetHotels any `json:"budgetHotels"`
}

// BudgetCeiling returns the active budget ceiling, or nil when the caller
// did not opt into custom budget filtering. An unparsable budget counts as 0,
// which with the flag set filters out every offer.
func (r HotelSearchRequest) BudgetCeiling() *float64 {
	if !r.UseCustomBudget {
		return nil
	}
	ceiling := coerceFloat(r.BudgetHotels)
	return &ceiling
}

func (r HotelSearchRequest) NormalizedCounts() (adults, children int) {
	adults = r.Adults
	if adults <= 0 {
		adults = 1
	}
	children = r.Children
	if children < 0 {
		children = 0
	}
	return adults, children
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	case json.Number:
		if parsed, err := val.Float64(); err == nil {
			return parsed
		}
	}
	return 0
}
