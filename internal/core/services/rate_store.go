package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/craftkart/currency-engine/internal/core/domain"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
)

// RateStore caches the generic base-relative exchange-rate table fetched
// from an upstream FX API. Refresh replaces the whole snapshot atomically;
// a failed fetch keeps the previous snapshot so readers run on stale data
// until the next scheduled tick. There is no retry between ticks.
type RateStore struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
	snapshot   atomic.Pointer[domain.RateSnapshot]
}

// rateAPIResponse mirrors the upstream response shape, e.g.
// {"result":"success","base_code":"INR","rates":{"USD":0.012,...}}.
type rateAPIResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// NewRateStore creates a RateStore fetching from the given URL.
func NewRateStore(url string, timeout time.Duration, logger *slog.Logger) *RateStore {
	return &RateStore{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Rates returns the current snapshot. The zero snapshot (nil table) means
// the store has never been successfully populated.
func (s *RateStore) Rates() domain.RateSnapshot {
	if snap := s.snapshot.Load(); snap != nil {
		return *snap
	}
	return domain.RateSnapshot{}
}

// Refresh fetches the upstream table and swaps the snapshot wholesale.
// On any failure the previous snapshot is retained untouched.
func (s *RateStore) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rates API returned status %d", resp.StatusCode)
	}

	var apiResp rateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode rates response: %w", err)
	}
	if apiResp.Result != "" && apiResp.Result != "success" {
		return fmt.Errorf("rates API returned result=%s", apiResp.Result)
	}

	table := make(domain.RateTable, len(apiResp.Rates))
	for code, rate := range apiResp.Rates {
		if r := domain.SanitizeRate(rate); r > 0 {
			table[domain.NormalizeCode(code)] = r
		}
	}
	if len(table) == 0 {
		return fmt.Errorf("rates API returned no usable rates")
	}

	snap := &domain.RateSnapshot{Rates: table, FetchedAt: time.Now()}
	s.snapshot.Store(snap)
	s.logger.Info("Exchange rate table refreshed", slog.Int("count", len(table)))
	return nil
}

var _ portssvc.RateSource = (*RateStore)(nil)
