// Package pkgmanager makes sure a package exists in the workspace.
//
// Cargo first tries to update the package and, when that fails, creates it.
// The update attempt is expected to fail for new packages, so its diagnostics
// are discarded; only a failed create is reported, with its exit code and
// standard error.
package pkgmanager
