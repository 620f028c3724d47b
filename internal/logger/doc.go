// Package logger wraps zap for the aoc-admin binary:
//   - a global sugared logger writing console-formatted records to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and switching,
//   - leveled helpers (Info, InfoKV, DebugKV) that take the logger from a context.
//
// Stdout is left to the package manager, whose output is passed through verbatim.
package logger
