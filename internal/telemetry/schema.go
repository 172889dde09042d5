package telemetry

import (
	"database/sql"

	"codeberg.org/mutker/envlogd/internal/errors"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS cycles (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            logged_at INTEGER NOT NULL,
            uptime_ms INTEGER NOT NULL,
            outcome TEXT NOT NULL,
            reason TEXT,
            temperature REAL,
            humidity REAL,
            pressure REAL,
            light INTEGER
        )
    `)
	if err != nil {
		return errors.New().Wrap(ErrStorageInit, err)
	}

	return nil
}
