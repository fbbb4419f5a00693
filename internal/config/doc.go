// Package config provides configuration management for deckcount.
//
// Settings come from three layers, later layers winning: the defaults of
// NewConfig, an optional .deckcount YAML file, and command-line flags.
package config
