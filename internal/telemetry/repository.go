package telemetry

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/envlogd/internal/errors"
	"codeberg.org/mutker/envlogd/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type Repository interface {
	Store(ctx context.Context, snapshot *CycleSnapshot) error
	Close() error
}

type sqliteRepository struct {
	db  *sql.DB
	log logger.Logger
	mu  sync.Mutex
}

func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	log.Debug().Msgf("Initializing cycle journal at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal=WAL")
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{
		db:  db,
		log: log,
	}, nil
}

func (r *sqliteRepository) Store(ctx context.Context, snapshot *CycleSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO cycles (
            logged_at, uptime_ms, outcome, reason,
            temperature, humidity, pressure, light
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `,
		snapshot.LoggedAt.Unix(),
		int64(snapshot.UptimeMS),
		string(snapshot.Outcome),
		snapshot.Reason,
		snapshot.Temperature,
		snapshot.Humidity,
		snapshot.Pressure,
		snapshot.Light,
	)
	if err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log.Debug().Msg("Closing cycle journal")
	if err := r.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}
	return nil
}
