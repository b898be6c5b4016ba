// Package manifest handles staging manifests: YAML documents that list files
// to stage in one run. A manifest is validated against an embedded JSON
// schema, can pin a minimum tool version, and is applied entry by entry
// through a stage.Stager.
package manifest
