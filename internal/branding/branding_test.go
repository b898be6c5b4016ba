package branding

import "testing"

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"session", "FILESTAGE_SESSION"},
		{"PERMANENT", "FILESTAGE_PERMANENT"},
		{"token", "FILESTAGE_TOKEN"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "filestage" {
		t.Errorf("CLIName() = %q", CLIName())
	}
	if HomeDir() != ".filestage" {
		t.Errorf("HomeDir() = %q", HomeDir())
	}
	if SessionDirName() == "" || PermanentDirName() == "" {
		t.Error("area directory names must not be empty")
	}
}
