/*
Copyright © 2025 sevenuz
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Editor  string     `mapstructure:"editor"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log" validate:"required"`
	IDs     IDConfig   `mapstructure:"ids"`
	List    ListConfig `mapstructure:"list"`
}

// DataConfig holds save file settings. The file format follows the extension.
type DataConfig struct {
	// SaveFileName is searched for in the working directory and its ancestors.
	SaveFileName string `mapstructure:"saveFileName" validate:"required,excludesall=/\\"`
	// DefaultFilePath is used when no save file is found.
	DefaultFilePath string `mapstructure:"defaultFilePath" validate:"required"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json logfmt"`
}

// IDConfig controls generated item ids.
type IDConfig struct {
	Length int `mapstructure:"length" validate:"min=1,max=32"`
}

// ListConfig controls the list command.
type ListConfig struct {
	MaxDepth int `mapstructure:"maxDepth" validate:"min=1,max=100"`
}
