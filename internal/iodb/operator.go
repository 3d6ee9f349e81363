// Package iodb connects chemdb to PostgreSQL and inspects the
// live schema. It implements db.Operator from pkg/db.
package iodb

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// import is sequential, a small pool is enough
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// dsn builds a connection URL, escaping user and password.
func dsn(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     cfg.Database,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Pool returns the connection pool, nil before Connect.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any tables in the
// public schema.
func (p *pgxOperator) HasTables(
	ctx context.Context,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	err := p.pool.QueryRow(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// DropAllTables drops all tables in the public schema.
func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}
	tables, err := p.names(ctx, `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'`)
	if err != nil {
		return QueryTablesError(err)
	}
	return p.dropEach(ctx, "TABLE", tables, DropTableError)
}

// DropMaterializedViews drops all materialized views in the
// public schema, the compounds view included.
func (p *pgxOperator) DropMaterializedViews(
	ctx context.Context,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}
	views, err := p.names(ctx, `
		SELECT matviewname FROM pg_matviews
		WHERE schemaname = 'public'`)
	if err != nil {
		return QueryViewsError(err)
	}
	return p.dropEach(ctx, "MATERIALIZED VIEW", views, DropViewError)
}

// names runs a single-column query and collects its values.
func (p *pgxOperator) names(
	ctx context.Context,
	query string,
) ([]string, error) {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (p *pgxOperator) dropEach(
	ctx context.Context,
	kind string,
	names []string,
	onErr func(string, error) error,
) error {
	for _, name := range names {
		q := fmt.Sprintf("DROP %s IF EXISTS %s CASCADE",
			kind, pgx.Identifier{name}.Sanitize())
		if _, err := p.pool.Exec(ctx, q); err != nil {
			return onErr(name, err)
		}
	}
	return nil
}

// ColumnInfo reads the type and nullability of a column from
// information_schema.
func (p *pgxOperator) ColumnInfo(
	ctx context.Context,
	table, column string,
) (db.Column, error) {
	var res db.Column
	if p.pool == nil {
		return res, NotConnectedError()
	}

	query := `
		SELECT udt_name, is_nullable = 'NO'
		FROM information_schema.columns
		WHERE table_schema = 'public'
		AND table_name = $1
		AND column_name = $2
	`

	err := p.pool.QueryRow(ctx, query, table, column).
		Scan(&res.Type, &res.NotNull)
	if errors.Is(err, pgx.ErrNoRows) {
		return res, nil
	}
	if err != nil {
		return res, ColumnCheckError(table, column, err)
	}
	res.Exists = true
	return res, nil
}
