// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	// Remaining is set when a budget has too little headroom left.
	Remaining *string `json:"remaining,omitempty"`
}

// MessageResponse represents a plain success response.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDsRequest carries a list of entity ids.
type IDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// ParseDate parses a calendar date in DateLayout as local midnight, matching the
// clock budgets and recurrences are computed with.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseOptionalDate parses s when it is non-empty.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
