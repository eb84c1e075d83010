package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notelock/internal/keywrap"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check a passphrase against the strength policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := promptPassphrase("Passphrase to check: ")
			if err != nil {
				return err
			}
			report := keywrap.ValidatePassphrase(pass)
			fmt.Printf("valid: %v\nstrength: %s\n", report.Valid, report.Strength)
			if len(report.Violations) > 0 {
				fmt.Printf("violations: %s\n", strings.Join(report.Violations, ", "))
			}
			return nil
		},
	}
}
