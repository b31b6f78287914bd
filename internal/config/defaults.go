// Package config provides centralized configuration constants and path
// resolution for cake. All default values should be defined here to ensure a
// single source of truth.
package config

// AppName names the config and data directories.
const AppName = "cake"

// EnvPrefix is the prefix of environment overrides, e.g. CAKE_EDITOR.
const EnvPrefix = "CAKE"

// ConfigFileName is the config file base name; viper tries every supported
// extension.
const ConfigFileName = "config"

// Data file defaults
const (
	// DefaultSaveFileName is searched for in the working directory and its parents.
	DefaultSaveFileName = "cake.json"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultEditor is used when neither $EDITOR nor the editor setting is set.
const DefaultEditor = "vi"

// DefaultListMaxDepth bounds tree rendering and recursive expansion.
const DefaultListMaxDepth = 10

// DefaultIDLength is the length of generated item ids.
const DefaultIDLength = 3
