// Package workspace finds the cargo workspace that holds the puzzle packages
// and builds the Environment passed to every command.
//
// The workspace root is taken from the first Locator in a chain that answers:
// an explicit path, CARGO_MANIFEST_DIR, `cargo metadata`, the enclosing git
// repository and finally the working directory. The AoC home is the root's
// grandparent; dotenv files under it feed the configuration source.
package workspace
