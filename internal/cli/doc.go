// Package cli turns command-line arguments and the environment into a
// validated config.Config.
package cli
