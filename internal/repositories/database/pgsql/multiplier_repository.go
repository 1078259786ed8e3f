package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftkart/currency-engine/internal/apperrors"
	portsrepo "github.com/craftkart/currency-engine/internal/core/ports/repositories"
	"github.com/craftkart/currency-engine/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMultiplierRepository implements the multiplier repository facade using pgxpool.
type PgxMultiplierRepository struct {
	pool *pgxpool.Pool
}

// NewPgxMultiplierRepository creates a new repository for multiplier data.
func NewPgxMultiplierRepository(pool *pgxpool.Pool) portsrepo.MultiplierRepositoryFacade {
	return &PgxMultiplierRepository{pool: pool}
}

// SaveMultiplier inserts a new multiplier entry. One entry per currency.
func (r *PgxMultiplierRepository) SaveMultiplier(ctx context.Context, m models.Multiplier) error {
	query := `
		INSERT INTO currency_multipliers (
			multiplier_id, currency_code, multiplier, rate_to_inr,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		m.MultiplierID, m.CurrencyCode, m.Multiplier, m.RateToINR,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting multiplier for %s: %w", m.CurrencyCode, err)
	}
	return nil
}

// UpdateMultiplier replaces the values of an existing entry. A nil RateToINR
// clears the stored direct rate.
func (r *PgxMultiplierRepository) UpdateMultiplier(ctx context.Context, m models.Multiplier) error {
	query := `
		UPDATE currency_multipliers
		SET multiplier = $2, rate_to_inr = $3, last_updated_at = $4, last_updated_by = $5
		WHERE currency_code = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		m.CurrencyCode, m.Multiplier, m.RateToINR, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating multiplier for %s: %w", m.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMultiplier removes the entry for a currency.
func (r *PgxMultiplierRepository) DeleteMultiplier(ctx context.Context, currencyCode string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM currency_multipliers WHERE currency_code = $1`, currencyCode)
	if err != nil {
		return fmt.Errorf("error deleting multiplier for %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMultiplierByCurrency retrieves the entry for a currency.
func (r *PgxMultiplierRepository) FindMultiplierByCurrency(ctx context.Context, currencyCode string) (*models.Multiplier, error) {
	query := `
		SELECT multiplier_id, currency_code, multiplier, rate_to_inr,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currency_multipliers
		WHERE currency_code = $1
	`
	m := &models.Multiplier{}
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(
		&m.MultiplierID, &m.CurrencyCode, &m.Multiplier, &m.RateToINR,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding multiplier for %s: %w", currencyCode, err)
	}
	return m, nil
}

// ListMultipliers retrieves every configured entry.
func (r *PgxMultiplierRepository) ListMultipliers(ctx context.Context) ([]models.Multiplier, error) {
	query := `
		SELECT multiplier_id, currency_code, multiplier, rate_to_inr,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currency_multipliers
		ORDER BY currency_code
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query multipliers: %w", err)
	}
	defer rows.Close()

	multipliers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Multiplier, error) {
		var m models.Multiplier
		err := row.Scan(
			&m.MultiplierID, &m.CurrencyCode, &m.Multiplier, &m.RateToINR,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan multipliers: %w", err)
	}

	return multipliers, nil
}
