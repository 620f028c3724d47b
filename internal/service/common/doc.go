// Package common holds helpers shared by several services.
//
// It runs external programs through the Runner interface so services can be
// tested without spawning processes: a non-zero exit is reported in Result,
// while a program that cannot be started is an error.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
