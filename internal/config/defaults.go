// Package config provides centralized configuration constants for todo.
// All default values should be defined here to ensure a single source of truth.
package config

const (
	// AppName is used for the config file name and crash log directory.
	AppName = "todo"

	// EnvPrefix prefixes every environment variable read by viper (TODO_VERBOSE, ...).
	EnvPrefix = "TODO"

	// ConfigName is the config file base name searched in $HOME and ".".
	ConfigName = ".todorc"

	// StorageFileName is the task file created directly under $HOME.
	StorageFileName = ".todo"

	// DataDirName holds auxiliary files such as crash logs.
	DataDirName = ".todo.d"
)

// Display defaults
const (
	DefaultLocale = "en"
	DefaultOutput = "text"
)

// Output formats accepted by "list --output".
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputTOML = "toml"
)

// OutputFormats lists the accepted output formats in help order.
var OutputFormats = []string{OutputText, OutputJSON, OutputYAML, OutputTOML}
