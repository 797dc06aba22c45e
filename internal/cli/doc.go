// Package cli provides command-line interface setup and configuration
// for the dialectprompt application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the zap
// logger the rest of the program logs through.
package cli
