package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/types"
)

// PrintError writes err to w. By default only the short message is shown; with
// --verbose the full chain of wrapped causes is printed.
func PrintError(w io.Writer, err error) {
	msg := userMessage(err)
	if viper.GetBool("verbose") {
		msg = err.Error()
	}

	prefix := "Error:"
	if ui.IsTerminal(w) {
		prefix = ui.StyleError.Render(prefix)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, msg)
}

// userMessage drops the underlying cause from a TodoError.
func userMessage(err error) string {
	var te *types.TodoError
	if errors.As(err, &te) {
		short := *te
		short.Err = nil
		return short.Error()
	}
	return err.Error()
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, types.ErrArgument):
		return 2
	default:
		return 1
	}
}
