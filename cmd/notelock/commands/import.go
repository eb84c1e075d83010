package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore a wrapped key from a portable backup",
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
			blob := strings.TrimSpace(string(raw))
			if err := wire.Custody.ImportBackup(cmd.Context(), owner, blob, pass); err != nil {
				return err
			}
			fmt.Println("Backup restored.")
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "backup file (default stdin)")
	return cmd
}
