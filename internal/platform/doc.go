// Package platform provides cross-platform filesystem helpers used when
// preparing storage area roots: permission management, writability probes
// and path canonicalization. On Windows chmod is a no-op.
package platform
