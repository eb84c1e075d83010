package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a portable backup of your wrapped key",
		Long: "The backup stays encrypted under your passphrase; the passphrase is\n" +
			"verified first so you cannot export a backup you could never restore.",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireUser()
			if err != nil {
				return err
			}
			pass, err := promptPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			blob, err := wire.Custody.ExportBackup(cmd.Context(), owner, pass)
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Println(blob)
				return nil
			}
			return os.WriteFile(outPath, []byte(blob+"\n"), 0o600)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "backup file (default stdout)")
	return cmd
}
