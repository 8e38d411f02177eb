// Package postgresql opens the connection pool and keeps the schema current.
package postgresql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

func New(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}

// Migrate applies every pending migration embedded in the binary.
func Migrate(ctx context.Context, dsn string, log *slog.Logger) error {
	const op = "storage.postgresql.Migrate"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{log: log.With(slog.String("op", op))})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// gooseLogger forwards goose output to slog. Fatalf does not exit; the
// error comes back from goose and the caller decides.
type gooseLogger struct {
	log *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
