// Package cli provides command-line interface setup and configuration
// for the textlens application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and wiring of
// the analysis pipeline from that configuration.
package cli
