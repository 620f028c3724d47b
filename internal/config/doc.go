// Package config resolves aoc-admin configuration.
//
// Settings is the optional YAML file kept in the workspace root. Source is a
// key lookup; EnvSource layers the process environment over dotenv files found
// under the AoC home directory.
package config
