package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// VersionTable stores the applied schema version
const VersionTable = "schema_version"

//go:embed sql/*.sql
var migrationFiles embed.FS

// Files returns the embedded migration directory
func Files() fs.FS {
	sub, err := fs.Sub(migrationFiles, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrator applies the embedded schema migrations with tern
type Migrator struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(pool *pgxpool.Pool, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		pool:   pool,
		logger: lgr,
	}
}

// Migrate brings the schema to the latest version
func (m *Migrator) Migrate(ctx context.Context) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for migrations: %w", err)
	}
	defer conn.Release()

	migrator, err := tern.NewMigrator(ctx, conn.Conn(), VersionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	if err := migrator.LoadMigrations(Files()); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	migrator.OnStart = func(sequence int32, name, direction, _ string) {
		m.logger.Info().Int32("sequence", sequence).Str("name", name).Str("direction", direction).Msg("Applying migration")
	}

	from, err := migrator.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("applying database migrations: %w", err)
	}

	to := int32(len(migrator.Migrations))
	if from == to {
		m.logger.Info().Int32("version", to).Msg("Database schema up to date")
	} else {
		m.logger.Info().Int32("from", from).Int32("to", to).Msg("Database schema migrated")
	}
	return nil
}
