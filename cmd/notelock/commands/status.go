package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the custody state for your user",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireUser()
			if err != nil {
				return err
			}
			state, err := wire.Custody.Status(cmd.Context(), owner)
			if err != nil {
				return err
			}
			fmt.Println(state)
			return nil
		},
	}
}
