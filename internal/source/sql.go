package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	_ "modernc.org/sqlite"             // sqlite driver
)

// Both relational drivers share one table contract:
//
//	CREATE TABLE taxonomy_documents (
//	    version TEXT PRIMARY KEY,
//	    payload BLOB
//	)
//
// A fetch reads one named version, or the lexically greatest when no
// version is pinned. Versions sort as strings, so deployments are expected
// to use sortable tags (dates or zero-padded counters).

// SQL fetches the taxonomy document from a relational table. It opens the
// database lazily per fetch and holds no pooled connections between calls;
// taxonomy loads happen once per process start.
type SQL struct {
	driver     Driver
	driverName string
	dsn        string
	version    string
	open       func(driverName, dsn string) (*sql.DB, error)
}

// NewSQLite constructs a source over a local sqlite database file.
func NewSQLite(path, version string) (*SQL, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite source requires a database path")
	}
	return &SQL{
		driver:     DriverSQLite,
		driverName: "sqlite",
		dsn:        path,
		version:    version,
		open:       sql.Open,
	}, nil
}

// NewPostgres constructs a source over a postgres DSN using the pgx
// database/sql driver.
func NewPostgres(dsn, version string) (*SQL, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres source requires a DSN")
	}
	return &SQL{
		driver:     DriverPostgres,
		driverName: "pgx",
		dsn:        dsn,
		version:    version,
		open:       sql.Open,
	}, nil
}

func (s *SQL) Fetch(ctx context.Context) ([]byte, error) {
	db, err := s.open(s.driverName, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", s.driver, err)
	}
	defer func() { _ = db.Close() }()

	var payload []byte
	if s.version != "" {
		err = db.QueryRowContext(ctx,
			`SELECT payload FROM taxonomy_documents WHERE version = $1`, s.version).Scan(&payload)
	} else {
		err = db.QueryRowContext(ctx,
			`SELECT payload FROM taxonomy_documents ORDER BY version DESC LIMIT 1`).Scan(&payload)
	}
	if errors.Is(err, sql.ErrNoRows) {
		if s.version != "" {
			return nil, fmt.Errorf("taxonomy version %q not found", s.version)
		}
		return nil, fmt.Errorf("no taxonomy documents stored")
	}
	if err != nil {
		return nil, fmt.Errorf("query taxonomy document: %w", err)
	}
	return payload, nil
}

func (s *SQL) Driver() Driver { return s.driver }

func (s *SQL) Description() string {
	if s.version != "" {
		return fmt.Sprintf("%s %s (version %s)", s.driver, s.dsn, s.version)
	}
	return fmt.Sprintf("%s %s (latest version)", s.driver, s.dsn)
}
