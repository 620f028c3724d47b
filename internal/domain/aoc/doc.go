// Package aoc contains the value types of an Advent of Code workspace.
//
// Spec is a puzzle coordinate (year, day and session token) that validates
// itself and knows where its input lives. Package is the zero-padded name of a
// scaffolded package, optionally owning a Spec whose day follows the package's
// sequence number.
package aoc
