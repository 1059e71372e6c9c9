// Package model defines the domain types for the apiseed CLI.
//
// It holds the framework enum, the project specification assembled from
// CLI arguments, name validation, and the CLIError type that carries
// process exit codes from any layer up to the command dispatcher.
package model
