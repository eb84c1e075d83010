package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notelock/internal/domain"
)

func encryptCmd() *cobra.Command {
	var (
		recipients []string
		inPath     string
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a note for one or more recipients",
		Long: "Encrypts stdin (or --in) for every --to recipient. Include your own\n" +
			"user id in --to if you want to read the note back later.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(recipients) == 0 {
				return fmt.Errorf("at least one --to recipient required")
			}
			plaintext, err := readInput(inPath)
			if err != nil {
				return err
			}

			var payload any
			if len(recipients) == 1 {
				payload, err = wire.Custody.EncryptTo(cmd.Context(), domain.OwnerID(recipients[0]), plaintext)
			} else {
				ids := make([]domain.OwnerID, len(recipients))
				for i, r := range recipients {
					ids[i] = domain.OwnerID(r)
				}
				payload, err = wire.Custody.EncryptFor(cmd.Context(), ids, plaintext)
			}
			if err != nil {
				return err
			}
			return writeJSONOutput(outPath, payload)
		},
	}
	cmd.Flags().StringSliceVar(&recipients, "to", nil, "recipient user id (repeatable)")
	cmd.Flags().StringVar(&inPath, "in", "", "plaintext file (default stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "payload file (default stdout)")
	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeJSONOutput(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if path == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
