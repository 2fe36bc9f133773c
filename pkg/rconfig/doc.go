// Package rconfig loads and saves the CLI's project-level ".mdchunkrc" YAML
// configuration file, and merges it with command-line flags.
package rconfig
