package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"notelock/internal/domain"
)

func decryptCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Unlock your key and decrypt a payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireUser()
			if err != nil {
				return err
			}
			raw, err := readInput(inPath)
			if err != nil {
				return err
			}

			pass, err := promptPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			if err := wire.Custody.Unlock(cmd.Context(), owner, pass); err != nil {
				return err
			}
			defer wire.Custody.Lock(owner)

			plaintext, err := decryptPayload(owner, raw)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = os.Stdout.Write(plaintext)
				return err
			}
			return os.WriteFile(outPath, plaintext, 0o600)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "payload file (default stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "plaintext file (default stdout)")
	return cmd
}

// decryptPayload detects the payload shape by its wrapped-key fields.
func decryptPayload(owner domain.OwnerID, raw []byte) ([]byte, error) {
	var multi domain.MultiRecipientEncryptedPayload
	if err := json.Unmarshal(raw, &multi); err == nil && len(multi.WrappedContentKeys) > 0 {
		return wire.Custody.DecryptFrom(owner, multi)
	}
	var single domain.EncryptedPayload
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return wire.Custody.Decrypt(owner, single)
}
