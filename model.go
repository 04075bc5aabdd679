package fixer

import (
	"github.com/shopspring/decimal"
)

type (
	// APIError is the nested error object the live fixer API returns
	// alongside success=false.
	APIError struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	}

	// Status carries the success flag and failure details common to
	// every fixer response. Older deployments report a top-level
	// message, newer ones nest it under error.info.
	Status struct {
		Success bool      `json:"success"`
		Message string    `json:"message,omitempty"`
		Error   *APIError `json:"error,omitempty"`
	}

	SymbolsResponse struct {
		Status
		Symbols map[string]string `json:"symbols"`
	}

	ConvertQuery struct {
		From   string          `json:"from"`
		To     string          `json:"to"`
		Amount decimal.Decimal `json:"amount"`
	}

	ConvertResponse struct {
		Status
		Query  ConvertQuery    `json:"query"`
		Date   string          `json:"date"`
		Result decimal.Decimal `json:"result"`
	}

	LatestResponse struct {
		Status
		Base  string                     `json:"base"`
		Date  string                     `json:"date"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
)

// FailureMessage returns the server-supplied failure text, preferring
// the top-level message over the nested error info. Empty when the
// server gave no reason.
func (s Status) FailureMessage() string {
	if s.Message != "" {
		return s.Message
	}

	if s.Error != nil {
		return s.Error.Info
	}

	return ""
}
