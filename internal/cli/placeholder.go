package cli

import (
	"fmt"

	"github.com/agentx-labs/filestage/internal/handle"
	"github.com/spf13/cobra"
)

var (
	placeholderPlacement placementFlags
	placeholderCreate    bool
)

func init() {
	placeholderPlacement.register(placeholderCmd)
	placeholderCmd.Flags().BoolVar(&placeholderCreate, "create", false, "Create the placeholder file instead of only printing its path")
	rootCmd.AddCommand(placeholderCmd)
}

var placeholderCmd = &cobra.Command{
	Use:   "placeholder",
	Short: "Print a path for an inert temp<millis>.temp placeholder file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStager()
		if err != nil {
			return err
		}
		b := placeholderPlacement.apply(s.Empty())

		var f *handle.File
		if placeholderCreate {
			f, err = b.CreateFile()
		} else {
			f, err = b.GetFile()
		}
		if err != nil {
			return err
		}
		abs, err := f.AbsolutePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), abs)
		return nil
	},
}
