// Package version holds the aoc-admin build metadata.
//
// Version, Commit and BuildTime are set through -ldflags at release time.
package version
