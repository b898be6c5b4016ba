// Package area resolves the two managed storage roots, the session area and
// the permanent area, and answers whether an arbitrary path lives inside one
// of them. Roots are resolved on every call so a host that rebinds them per
// session is always observed. It also provides the init and doctor routines
// that create and check the roots for the CLI.
package area
