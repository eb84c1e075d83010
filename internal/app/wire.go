package app

import (
	"net/http"
	"os"
	"path/filepath"

	"notelock/internal/custody"
	"notelock/internal/directory"
	"notelock/internal/domain"
	"notelock/internal/keywrap"
	"notelock/internal/logger"
	"notelock/internal/store"
)

// Wire bundles the constructed collaborators and services.
type Wire struct {
	Keystore  domain.Keystore
	Directory domain.Directory
	Custody   domain.Custody
	Log       *logger.Logger
}

// NewWire constructs the dependency graph from cfg. The keystore is always
// file-based under Home; the directory is HTTP when DirectoryURL is set and
// file-based otherwise.
func NewWire(cfg Config) (*Wire, error) {
	log := logger.New(cfg.LogLevel)

	keystoreDir := filepath.Join(cfg.Home, "keystore")
	if err := os.MkdirAll(keystoreDir, 0o700); err != nil {
		return nil, err
	}
	keystore := store.NewFileKeystore(keystoreDir)

	var dir domain.Directory
	if cfg.DirectoryURL != "" {
		dir = directory.NewHTTP(cfg.DirectoryURL, http.DefaultClient)
	} else {
		dirPath := filepath.Join(cfg.Home, "directory")
		if err := os.MkdirAll(dirPath, 0o700); err != nil {
			return nil, err
		}
		dir = directory.NewFileDirectory(dirPath)
	}

	params := keywrap.DefaultParams()
	if cfg.KDF.Time > 0 {
		params.Time = cfg.KDF.Time
	}
	if cfg.KDF.MemKiB > 0 {
		params.MemKiB = cfg.KDF.MemKiB
	}
	if cfg.KDF.Threads > 0 {
		params.Threads = cfg.KDF.Threads
	}

	return &Wire{
		Keystore:  keystore,
		Directory: dir,
		Custody:   custody.New(keystore, dir, params, log),
		Log:       log,
	}, nil
}
