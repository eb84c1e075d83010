package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"notelock/internal/crypto"
	"notelock/internal/domain"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [user-id]",
		Short: "Print the published key fingerprint for a user (default: you)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var owner domain.OwnerID
			if len(args) == 1 {
				owner = domain.OwnerID(args[0])
			} else {
				var err error
				owner, err = requireUser()
				if err != nil {
					return err
				}
			}
			der, err := wire.Directory.Lookup(cmd.Context(), owner)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", owner, crypto.Fingerprint(der))
			return nil
		},
	}
}
