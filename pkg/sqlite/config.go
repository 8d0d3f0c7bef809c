package sqlite

import "time"

type Config struct {
	Path        string        `env:"SQLITE_PATH" envDefault:"pocketrest.db"` // Path is the database file; ":memory:" keeps it in process.
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`    // BusyTimeout is how long a writer waits for a locked database.
}
