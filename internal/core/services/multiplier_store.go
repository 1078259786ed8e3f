package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/craftkart/currency-engine/internal/core/domain"
	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	portssvc "github.com/craftkart/currency-engine/internal/core/ports/services"
	"github.com/craftkart/currency-engine/internal/utils/mapping"
)

// MultiplierStore caches the admin-configured multiplier table loaded from
// the repository, with the same wholesale-swap and stale-on-failure
// semantics as RateStore. Values are validated on ingest: a zero, negative
// or non-finite multiplier degrades to the neutral 1, a bad direct rate to
// absent.
type MultiplierStore struct {
	repo     portsrepo.MultiplierReader
	logger   *slog.Logger
	snapshot atomic.Pointer[domain.MultiplierSnapshot]
}

// NewMultiplierStore creates a MultiplierStore over the given repository.
func NewMultiplierStore(repo portsrepo.MultiplierReader, logger *slog.Logger) *MultiplierStore {
	return &MultiplierStore{repo: repo, logger: logger}
}

// Multipliers returns the current snapshot. The zero snapshot means the
// store has never been successfully populated.
func (s *MultiplierStore) Multipliers() domain.MultiplierSnapshot {
	if snap := s.snapshot.Load(); snap != nil {
		return *snap
	}
	return domain.MultiplierSnapshot{}
}

// Refresh loads every configured entry and swaps the snapshot wholesale.
// An empty table is a valid result (no multipliers configured); only a
// failed load leaves the previous snapshot in place.
func (s *MultiplierStore) Refresh(ctx context.Context) error {
	rows, err := s.repo.ListMultipliers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load multipliers: %w", err)
	}

	snap := &domain.MultiplierSnapshot{
		Entries:   mapping.ToDomainMultiplierTable(rows),
		FetchedAt: time.Now(),
	}
	s.snapshot.Store(snap)
	s.logger.Info("Multiplier table refreshed", slog.Int("count", len(snap.Entries)))
	return nil
}

var _ portssvc.MultiplierSource = (*MultiplierStore)(nil)
