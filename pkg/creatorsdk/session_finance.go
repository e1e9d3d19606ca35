package creatorsdk

import (
	"context"
	"net/http"
)

// ListFinanceEntries returns the ledger newest first with its totals.
func (s *Session) ListFinanceEntries(ctx context.Context) (*FinanceEntriesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/finance/entries", nil)
	if err != nil {
		return nil, err
	}

	var out FinanceEntriesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddFinanceEntry records a new entry and returns the updated ledger.
func (s *Session) AddFinanceEntry(ctx context.Context, req AddFinanceEntryRequest) (*FinanceEntriesResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/finance/entries", req)
	if err != nil {
		return nil, err
	}

	var out FinanceEntriesResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFinanceSummary returns totals, display strings and the offered tags.
func (s *Session) GetFinanceSummary(ctx context.Context) (*FinanceSummaryResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/finance/summary", nil)
	if err != nil {
		return nil, err
	}

	var out FinanceSummaryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
