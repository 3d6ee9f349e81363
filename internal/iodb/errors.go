package iodb

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ConnectionError is returned when the connection pool cannot be created
// or the database does not answer.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Could not connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database <em>%s</em> does not exist
  - Connection settings are incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>
  3. Check database section of <em>~/.config/chemdb/config.yaml</em>`

	vars := []any{database, host, port, host, user}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// TableCheckError is returned when the list of tables cannot be read.
func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Could not verify database state",
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// TableExistsCheckError is returned when a check for one table fails.
func TableExistsCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  "Could not check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// ColumnCheckError is returned when a column description cannot be read.
func ColumnCheckError(table, column string, err error) error {
	return &gn.Error{
		Code: errcode.DBColumnCheckError,
		Msg:  "Could not check column <em>%s.%s</em>",
		Vars: []any{table, column},
		Err: fmt.Errorf("failed to check column %s.%s: %w",
			table, column, err),
	}
}

// QueryTablesError is returned when table names cannot be listed.
func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Could not list database tables",
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Could not drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}

// QueryViewsError is returned when materialized views cannot be listed.
func QueryViewsError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryViewsError,
		Msg:  "Could not list materialized views",
		Err:  fmt.Errorf("failed to query materialized views: %w", err),
	}
}

// DropViewError is returned when a materialized view cannot be dropped.
func DropViewError(view string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropViewError,
		Msg:  "Could not drop materialized view <em>%s</em>",
		Vars: []any{view},
		Err:  fmt.Errorf("failed to drop view %s: %w", view, err),
	}
}
