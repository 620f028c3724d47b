// Package puzzle downloads personal puzzle input.
//
// Client validates the puzzle spec before any request, then issues exactly
// one GET with the session cookie. There is no retry.
package puzzle
