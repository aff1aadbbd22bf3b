package db

import (
	"context"
	"fmt"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/yigit/relcatalog/internal/config"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
	"github.com/yigit/relcatalog/internal/pkg/logger"
)

// DBTX is the statement surface shared by *pgxpool.Pool and pgx.Tx.
// Repositories depend on it so they run unchanged inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DefaultConnMaxLifetime applies when database.conn_max_lifetime is unset or malformed
const DefaultConnMaxLifetime = time.Hour

// PostgresDB database connection structure
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool. Extra tracers are
// chained after the SQL trace logger.
func NewPostgresDB(cfg *config.Config, lgr zerolog.Logger, tracers ...pgx.QueryTracer) (*PostgresDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, DefaultConnMaxLifetime)

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	if cfg.Database.LogQueries {
		level := logger.ParseLevel(cfg.Logging.Level)
		tracers = append([]pgx.QueryTracer{&tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(lgr.With().Str("component", "pgx").Logger()),
			LogLevel: logger.PgxTraceLevel(level),
		}}, tracers...)
	}
	poolConfig.ConnConfig.Tracer = chainTracers(tracers...)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// Close closes the pool
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
