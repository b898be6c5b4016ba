package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathPlacement placementFlags

func init() {
	pathPlacement.register(pathCmd)
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Print where a file would be staged, without creating it",
	Long: `Resolve the placement of <name> and print its absolute path.
Nothing is created. With the default unique folder, every call prints a
different path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStager()
		if err != nil {
			return err
		}
		b, err := s.ForName(args[0])
		if err != nil {
			return err
		}
		f, err := pathPlacement.apply(b).GetFile()
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
