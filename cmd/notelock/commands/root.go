package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"notelock/internal/app"
	"notelock/internal/domain"
)

var (
	home         string
	directoryURL string
	user         string
	passphrase   string

	wire *app.Wire
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "notelock",
		Short:         "End-to-end encryption for private notes and family messages",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if directoryURL != "" {
				cfg.DirectoryURL = directoryURL
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".notelock")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.notelock)")
	root.PersistentFlags().StringVar(&directoryURL, "directory", "", "directory service base URL (default: local file directory)")
	root.PersistentFlags().StringVarP(&user, "user", "u", "", "your user id")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (prompted when omitted)")

	root.AddCommand(
		setupCmd(), statusCmd(), passwdCmd(), checkCmd(), fingerprintCmd(),
		encryptCmd(), decryptCmd(), exportCmd(), importCmd(),
	)
	return root.Execute()
}

// requireUser returns the --user flag value or an error.
func requireUser() (domain.OwnerID, error) {
	if user == "" {
		return "", fmt.Errorf("user id required (-u)")
	}
	return domain.OwnerID(user), nil
}
