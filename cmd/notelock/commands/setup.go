package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Generate a key pair and store it wrapped under your passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireUser()
			if err != nil {
				return err
			}
			pass, err := promptNewPassphraseOrFlag("Passphrase: ")
			if err != nil {
				return err
			}
			fp, err := wire.Custody.Setup(cmd.Context(), owner, pass)
			if err != nil {
				return err
			}
			fmt.Printf("Key pair created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}

// promptNewPassphraseOrFlag honors -p, else prompts with confirmation.
func promptNewPassphraseOrFlag(prompt string) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	return promptNewPassphrase(prompt)
}
