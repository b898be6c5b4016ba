// Package config manages user-level settings stored at ~/.filestage/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the storage area roots and the unique-folder token strategy. Every key can
// be overridden from the environment with the FILESTAGE_ prefix.
package config
