package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func passwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the passphrase protecting your private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireUser()
			if err != nil {
				return err
			}
			oldPass, err := readSecret("Current passphrase: ")
			if err != nil {
				return err
			}
			newPass, err := promptNewPassphrase("New passphrase: ")
			if err != nil {
				return err
			}
			if err := wire.Custody.ChangePassphrase(cmd.Context(), owner, oldPass, newPass); err != nil {
				return err
			}
			fmt.Println("Passphrase changed. Existing notes remain readable.")
			return nil
		},
	}
}
