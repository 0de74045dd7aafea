package pg

import (
	"context"
	"errors"
	"time"

	"quotes-service/internal/application"
	"quotes-service/internal/domain"
	"quotes-service/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	findFreshSQL = `
        SELECT symbol_id, convert_id, quote::float8, requested_at
        FROM quotes
        WHERE symbol_id = $1 AND convert_id = $2
          AND requested_at > NOW() - make_interval(secs => $3)
        ORDER BY requested_at DESC
        LIMIT 1`
	appendSQL = `
        INSERT INTO quotes (symbol_id, convert_id, quote)
        VALUES ($1, $2, $3)
        RETURNING symbol_id, convert_id, quote::float8, requested_at`
)

type QuoteStore struct{ db *DB }

var _ application.QuoteStore = (*QuoteStore)(nil)

func NewQuoteStore(db *DB) *QuoteStore { return &QuoteStore{db: db} }

func (s *QuoteStore) FindFresh(ctx context.Context, symbolID, convertID string, window time.Duration) (domain.Observation, bool, error) {
	log := logx.WithFields(ctx).With(
		zap.String("repo", "quotes"),
		zap.String("operation", "FindFresh"),
		zap.String("symbol_id", symbolID),
		zap.String("convert_id", convertID),
	)
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		log.Error("sql.acquire_failed", zap.Error(err))
		return domain.Observation{}, false, &application.StorageError{Op: "find_fresh", Err: err}
	}
	defer conn.Release()

	var out domain.Observation
	err = conn.QueryRow(ctx, findFreshSQL, symbolID, convertID, window.Seconds()).
		Scan(&out.SymbolID, &out.ConvertID, &out.Price, &out.ObservedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debug("sql.query_no_rows")
		return domain.Observation{}, false, nil
	}
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return domain.Observation{}, false, &application.StorageError{Op: "find_fresh", Err: err}
	}
	log.Debug("sql.query_success", zap.Time("requested_at", out.ObservedAt))
	return out, true, nil
}

func (s *QuoteStore) Append(ctx context.Context, symbolID, convertID string, price float64) (domain.Observation, error) {
	log := logx.WithFields(ctx).With(
		zap.String("repo", "quotes"),
		zap.String("operation", "Append"),
		zap.String("symbol_id", symbolID),
		zap.String("convert_id", convertID),
	)
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		log.Error("sql.acquire_failed", zap.Error(err))
		return domain.Observation{}, &application.StorageError{Op: "append", Err: err}
	}
	defer conn.Release()

	var out domain.Observation
	err = conn.QueryRow(ctx, appendSQL, symbolID, convertID, price).
		Scan(&out.SymbolID, &out.ConvertID, &out.Price, &out.ObservedAt)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return domain.Observation{}, &application.StorageError{Op: "append", Err: err}
	}
	log.Info("sql.exec_success", zap.Float64("price", out.Price), zap.Time("requested_at", out.ObservedAt))
	return out, nil
}

func (s *QuoteStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return &application.StorageError{Op: "ping", Err: err}
	}
	return nil
}
