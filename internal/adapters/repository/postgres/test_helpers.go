package postgres

import (
	"context"
	"database/sql"
	"doclib/internal/config"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// truncated in dependency order
var testTables = []string{"document_tags", "documents", "tags", "provisional_uploads"}

// migrationsDir walks up from the working directory to the module root
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "db", "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// NewTestDB starts postgres in a container and applies the migrations. It returns the connection,
// a teardown func and a func emptying every table.
func NewTestDB(t *testing.T) (*sql.DB, func(), func()) {
	t.Helper()
	ctx := context.Background()

	cfg := config.DatabaseConfig{
		User:           "doclib",
		Password:       "doclib",
		Name:           "doclib_test",
		SSLMode:        "disable",
		MaxOpenCons:    5,
		MaxIdleCons:    2,
		ConMaxLifeTime: time.Minute,
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     cfg.User,
				"POSTGRES_PASSWORD": cfg.Password,
				"POSTGRES_DB":       cfg.Name,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	cfg.Host, err = container.Host(ctx)
	if err != nil {
		t.Fatalf("could not get postgres host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("could not get postgres port: %v", err)
	}
	cfg.Port, _ = strconv.Atoi(mapped.Port())

	db, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("could not connect to postgres: %v", err)
	}

	dir, err := migrationsDir()
	if err != nil {
		t.Fatalf("could not find migrations: %v", err)
	}
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		t.Fatalf("could not create migrate driver: %v", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(dir), "postgres", driver)
	if err != nil {
		t.Fatalf("could not init migrate from %s: %v", dir, err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("could not run migrations: %v", err)
	}

	teardown := func() {
		_ = db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("could not terminate postgres container: %v", err)
		}
	}

	truncate := func() {
		for _, table := range testTables {
			if _, err := db.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
				t.Fatalf("could not truncate %s: %v", table, err)
			}
		}
	}

	return db, teardown, truncate
}
