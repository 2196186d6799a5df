/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Storage StorageConfig `mapstructure:"storage"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
}

// StorageConfig holds settings for the task file
type StorageConfig struct {
	// Path overrides the default $HOME/.todo location when set.
	Path string `mapstructure:"path"`
	// Atomic switches saves to temp-file-then-rename.
	Atomic bool `mapstructure:"atomic"`
}

// DisplayConfig holds listing output settings
type DisplayConfig struct {
	Locale string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	Output string `mapstructure:"output" validate:"required,oneof=text json yaml toml"`
	Color  bool   `mapstructure:"color"`
}
