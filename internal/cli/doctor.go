package cli

import (
	"fmt"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing roots and repair permissions")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the storage area roots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		problems, err := area.Check(cmd.OutOrStdout(), afero.NewOsFs(), area.EnvResolver{}, doctorFix)
		if err != nil {
			return err
		}
		if problems > 0 {
			return fmt.Errorf("%d storage area problem(s) found", problems)
		}
		return nil
	},
}
