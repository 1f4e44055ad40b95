package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/placementhub/placement-portal/internal/config"
	"github.com/placementhub/placement-portal/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolationCode = "23505"

// Store keeps every collection in a single documents table and relies on
// jsonb containment for filtering, so scalar equality and tag membership
// share one code path.
type Store struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(cfg.DBHost),
		strings.TrimSpace(cfg.DBPort),
		strings.TrimSpace(cfg.DBUser),
		cfg.DBPassword,
		strings.TrimSpace(cfg.DBName),
		strings.TrimSpace(cfg.DBSSLMode),
	)

	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMinConns > 0 {
		pcfg.MinConns = cfg.PoolMinConns
	}
	if cfg.PoolMaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.PoolMaxConnLifetime
	}
	if cfg.PoolMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	}

	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, err
	}

	return &Store{pool: p, sqlDB: stdlib.OpenDBFromPool(p)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("nil store")
	}
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if s.sqlDB != nil {
		_ = s.sqlDB.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// SQLDB exposes the stdlib bridge used by the migration runner.
func (s *Store) SQLDB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

func (s *Store) Insert(ctx context.Context, collection string, record any) (uuid.UUID, error) {
	if s == nil || s.pool == nil {
		return uuid.Nil, fmt.Errorf("nil store")
	}

	id := uuid.New()
	doc, err := database.EncodeRecord(record, id)
	if err != nil {
		return uuid.Nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		id, collection, data, now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return uuid.Nil, database.ErrConflict
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter database.Filter) (json.RawMessage, bool, error) {
	if s == nil || s.pool == nil {
		return nil, false, fmt.Errorf("nil store")
	}

	cond, err := filterJSON(filter)
	if err != nil {
		return nil, false, err
	}

	var data []byte
	row := s.pool.QueryRow(ctx,
		`SELECT data FROM documents
		 WHERE collection = $1 AND data @> $2
		 ORDER BY created_at ASC
		 LIMIT 1`,
		collection, cond,
	)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return json.RawMessage(data), true, nil
}

func (s *Store) FindMany(ctx context.Context, collection string, filter database.Filter) ([]json.RawMessage, error) {
	if s == nil || s.pool == nil {
		return nil, fmt.Errorf("nil store")
	}

	cond, err := filterJSON(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT data FROM documents
		 WHERE collection = $1 AND data @> $2
		 ORDER BY created_at ASC`,
		collection, cond,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]json.RawMessage, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateOne(ctx context.Context, collection string, id uuid.UUID, fields database.Fields) (int64, error) {
	if s == nil || s.pool == nil {
		return 0, fmt.Errorf("nil store")
	}
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty update")
	}

	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents
		 SET data = data || $3, updated_at = $4
		 WHERE collection = $1 AND id = $2`,
		collection, id, patch, time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// filterJSON renders a Filter as the jsonb containment operand. An empty
// filter becomes {}, which matches every document in the collection.
func filterJSON(filter database.Filter) ([]byte, error) {
	if filter == nil {
		filter = database.Filter{}
	}
	return json.Marshal(filter)
}
