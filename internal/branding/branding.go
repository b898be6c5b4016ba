// Package branding provides compile-time identity values for the CLI.
//
// The values come from the embedded branding.yaml. Forks that rename the
// tool edit that file; nothing else in the tree hardcodes the name.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	SessionDirName   string `yaml:"session_dir_name"`
	PermanentDirName string `yaml:"permanent_dir_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "filestage",
			DisplayName:      "FileStage",
			Description:      "Stage files into managed session and permanent storage areas",
			HomeDir:          ".filestage",
			EnvPrefix:        "FILESTAGE",
			GoModule:         "github.com/agentx-labs/filestage",
			SessionDirName:   "filestage-session",
			PermanentDirName: "files",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "filestage").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".filestage").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "FILESTAGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// SessionDirName is the directory created under os.TempDir() for the
// default session area.
func SessionDirName() string { load(); return defaults.SessionDirName }

// PermanentDirName is the directory created under HomeDir for the default
// permanent area.
func PermanentDirName() string { load(); return defaults.PermanentDirName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("session") → "FILESTAGE_SESSION".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
