package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/agentx-labs/filestage/internal/area"
	"github.com/agentx-labs/filestage/internal/branding"
	"github.com/agentx-labs/filestage/internal/config"
	"github.com/agentx-labs/filestage/internal/stage"
	"github.com/agentx-labs/filestage/internal/token"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose       bool
	tokenStrategy string
	logger        = slog.Default()
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log staging decisions to stderr")
	rootCmd.PersistentFlags().StringVar(&tokenStrategy, "token", "", "Unique folder token strategy: clock, uuid or sequence (default from config)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates files inside managed storage areas: a session area that the
host cleans up when the session ends, and a permanent area. Files are
placed in a uniquely named folder unless told otherwise, and external
files can be imported, or recognized when they already live in an area.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		l, err := newLogger(cmd.ErrOrStderr(), verbose, config.Get(config.KeyLogLevel))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// newStager builds a Stager on the host filesystem with roots resolved from
// the environment and config.
func newStager() (*stage.Stager, error) {
	strategy := tokenStrategy
	if strategy == "" {
		strategy = config.Get(config.KeyToken)
	}
	gen, err := token.FromName(strategy, time.Now)
	if err != nil {
		return nil, err
	}
	return stage.New(area.EnvResolver{},
		stage.WithFs(afero.NewOsFs()),
		stage.WithTokens(gen),
		stage.WithLogger(logger),
	), nil
}
