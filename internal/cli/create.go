package cli

import (
	"fmt"
	"io"

	"github.com/agentx-labs/filestage/internal/handle"
	"github.com/spf13/cobra"
)

var (
	createPlacement placementFlags
	createContent   string
	createStdin     bool
)

func init() {
	createPlacement.register(createCmd)
	createCmd.Flags().StringVar(&createContent, "content", "", "Write this text into the file")
	createCmd.Flags().BoolVar(&createStdin, "stdin", false, "Write standard input into the file")
	createCmd.MarkFlagsMutuallyExclusive("content", "stdin")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a staged file, optionally with content",
	Long: `Create <name> in the session area (or the permanent area with --permanent)
and print its absolute path. Without --content or --stdin the file is empty.
Existing content at the same path is replaced.`,
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
		createPlacement.apply(b)

		var f *handle.File
		switch {
		case createStdin:
			data, readErr := io.ReadAll(cmd.InOrStdin())
			if readErr != nil {
				return fmt.Errorf("reading standard input: %w", readErr)
			}
			f, err = b.CreateFileWithContent(data)
		case cmd.Flags().Changed("content"):
			f, err = b.CreateFileWithContent([]byte(createContent))
		default:
			f, err = b.CreateFile()
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
