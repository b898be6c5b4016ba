package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/agentx-labs/filestage/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	applyValidateOnly bool
	applyJSON         bool
)

func init() {
	applyCmd.Flags().BoolVar(&applyValidateOnly, "validate-only", false, "Validate the manifest without staging anything")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply <manifest.yaml>",
	Short: "Stage every file listed in a manifest",
	Long: `Stage the files listed in a YAML manifest, in order. Relative source paths
are resolved against the manifest's directory. Staging stops at the first
failing entry; entries staged before it are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		m, err := manifest.ParseFile(path)
		if err != nil {
			return err
		}
		if err := manifest.CheckVersion(m, buildVersion); err != nil {
			return err
		}
		if applyValidateOnly {
			fmt.Fprintf(out, "%s is valid (%d files)\n", path, len(m.Files))
			return nil
		}

		s, err := newStager()
		if err != nil {
			return err
		}
		results, applyErr := manifest.Apply(s, m, filepath.Dir(path))

		if applyJSON {
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling results: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return applyErr
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, r := range results {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Index, r.Action, r.Area, r.Path)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		return applyErr
	},
}
