package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options. Values come from NOTELOCK_* env vars
// and may be overridden by CLI flags.
type Config struct {
	// Home is the local data directory (keystore and file directory live
	// under it). Empty means ~/.notelock, resolved by the CLI.
	Home string `env:"HOME_DIR"`
	// DirectoryURL points at a remote directory service. Empty means a
	// local file directory under Home.
	DirectoryURL string `env:"DIRECTORY_URL"`
	// LogLevel is an slog level value (0 = info, -4 = debug).
	LogLevel int `env:"LOG_LEVEL" envDefault:"0"`
	// KDF tunes the passphrase key derivation cost.
	KDF KDF `envPrefix:"KDF_"`
}

// KDF carries Argon2id cost parameters. Zero values mean the package
// defaults.
type KDF struct {
	Time    uint32 `env:"TIME"`
	MemKiB  uint32 `env:"MEM"`
	Threads uint8  `env:"PAR"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "NOTELOCK_"}); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
