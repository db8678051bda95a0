package storage

import (
	"fmt"
	"log/slog"
)

// BackendType selects the persistence backend.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// BackendConfig carries what each backend needs to open.
type BackendConfig struct {
	Type BackendType

	// File backend
	DataDir string

	// SQLite backend
	SQLiteDBPath string
}

// Open creates the configured Store.
func Open(cfg BackendConfig, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		store, err := NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return store, nil
	case FileBackend:
		dir := cfg.DataDir
		if dir == "" {
			dir = "data"
		}
		store, err := NewFileStore(dir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "data_directory", dir)
		return store, nil
	default:
		logger.Info("Initialized memory backend")
		return NewMemory(), nil
	}
}
