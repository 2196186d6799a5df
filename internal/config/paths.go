package config

import (
	"os"
	"path/filepath"

	"github.com/josephgoksu/todo/types"
	"github.com/spf13/viper"
)

// GetHomeDir returns $HOME. Unlike os.UserHomeDir it never falls back to
// other sources: an unset or empty $HOME is an environment error.
// It's a variable to allow overriding in tests.
var GetHomeDir = func() (string, error) {
	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		return "", types.NewError(types.KindEnvironment, "resolve storage path", "$HOME is not set", nil)
	}
	return home, nil
}

// StoragePath returns the path of the task file.
// Resolution order (first match wins):
// 1. Explicit config via "storage.path" (flag/config file/env)
// 2. $HOME/.todo
func StoragePath() (string, error) {
	if path := viper.GetString("storage.path"); path != "" {
		return path, nil
	}
	home, err := GetHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, StorageFileName), nil
}

// DataDir returns the directory for auxiliary files ($HOME/.todo.d), or
// DataDirName relative to the working directory when $HOME is unset.
func DataDir() string {
	home, err := GetHomeDir()
	if err != nil {
		return DataDirName
	}
	return filepath.Join(home, DataDirName)
}
