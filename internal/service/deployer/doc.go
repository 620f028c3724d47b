// Package deployer scaffolds a puzzle package and stores its input.
//
// Deploy validates the attached puzzle spec, makes sure the package exists
// through the package manager, downloads the input and writes it to
// <package>/assets/input.txt under the workspace root. The first failing step
// ends the deployment; nothing is rolled back.
package deployer
