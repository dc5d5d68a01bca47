package persistent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/buzkaaclicker/folio"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// SQLSTATE of a relation that does not exist.
const codeUndefinedTable = "42P01"

func PgOpen(ctx context.Context, pgDsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(pgDsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	if os.Getenv("DB_VERBOSE") == "true" {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db, nil
}

// Running integration tests requires real pg db instance. testenv starts it
// once and passes its datasource to every test through the environment.

func PgOpenTest(ctx context.Context) *bun.DB {
	db, err := PgOpen(ctx, TestEnvDsn())
	if err != nil {
		logrus.WithError(err).Fatalln("Could not open test database.")
	}
	return db
}

func TestEnvDsn() string {
	return os.Getenv("PGDB_DSN")
}

func SetTestEnvDsn(dsn string) {
	os.Setenv("PGDB_DSN", dsn)
}

// Maps driver errors to folio error kinds.
func mapError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == codeUndefinedTable {
		return fmt.Errorf("%s: %w", pgErr.Field('M'), folio.ErrTableMissing)
	}
	return err
}

// Like mapError, but a missing row is ErrNotFound.
func mapRowError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return folio.ErrNotFound
	}
	return mapError(err)
}

// An update or delete that matched no row is ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return folio.ErrNotFound
	}
	return nil
}
