package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// setupCLI isolates a test from the real home directory and filesystem.
// It returns the in-memory filesystem and the storage file path on it.
func setupCLI(t *testing.T) (afero.Fs, string) {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)

	home := t.TempDir()
	t.Setenv("HOME", home)

	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() {
		appFs = prev
		viper.Reset()
		resetFlags(rootCmd)
	})

	return appFs, filepath.Join(home, ".todo")
}

// resetFlags restores every flag in the tree to its default so values do not
// leak between Execute calls on the shared rootCmd.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes rootCmd with args and returns stdout, stderr and the error.
func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
