package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var importJSON bool

func init() {
	importCmd.Flags().BoolVar(&importJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Bring an external file under management",
	Long: `Import the file at <path>. A file that already lives in the session or
permanent area is recognized in place and nothing is copied. Any other file
is copied into a new session file inside a unique folder.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStager()
		if err != nil {
			return err
		}
		source := args[0]
		f, copied, err := s.Import(source)
		if err != nil {
			return err
		}
		abs, err := f.AbsolutePath()
		if err != nil {
			return err
		}

		action := "recognized"
		if copied {
			action = "imported"
		}

		out := cmd.OutOrStdout()
		if importJSON {
			data, err := json.MarshalIndent(map[string]string{
				"action": action,
				"area":   f.Area().String(),
				"path":   abs,
				"source": source,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling result: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprintf(out, "%s (%s) %s\n", action, f.Area(), abs)
		return nil
	},
}
