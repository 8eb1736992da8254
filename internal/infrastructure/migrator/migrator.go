package migrator

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	ports "jira-pr-sync/internal/domain/ports/output"
)

type Migrator struct {
	m   *migrate.Migrate
	log ports.Logger
}

func NewMigrator(migrationsPath string, dsn string, log ports.Logger) (*Migrator, error) {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Debug("migrations: no change")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	m.log.Info("migrations applied")
	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
