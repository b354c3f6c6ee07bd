package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// PostgresStore keeps slots in the storefront_kv table (see migrations/).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `
		SELECT value
		FROM storefront_kv
		WHERE key = $1
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get failed: %w", err)
	}
	return []byte(value), nil
}

func (p *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Set"),
		zap.String("key", key),
	)

	if key == "" {
		return ErrInvalidKey
	}

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO storefront_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = NOW()
	`, key, string(value))
	if err != nil {
		log.Error("failed to upsert slot", zap.Error(err))
		return fmt.Errorf("postgres set failed: %w", err)
	}

	log.Debug("slot written", zap.Int("bytes", len(value)))
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM storefront_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("postgres delete failed: %w", err)
	}
	return nil
}
