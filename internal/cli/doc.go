// Package cli defines the Cobra command tree for the filestage CLI. Each file
// registers one top-level command (path, create, import, apply, etc.) with
// the root command. Commands delegate to the stage, area and manifest
// packages and only handle flag parsing and output formatting.
package cli
