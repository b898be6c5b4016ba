package cli

import (
	"fmt"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the session and permanent storage roots",
	Long: `Create the storage area roots if they do not exist yet. Roots come from
FILESTAGE_SESSION / FILESTAGE_PERMANENT, then session_root / permanent_root
in the config file, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Initializing storage areas")
		if err := area.Init(out, afero.NewOsFs(), area.EnvResolver{}); err != nil {
			return fmt.Errorf("initializing storage areas: %w", err)
		}
		return nil
	},
}
