// Package app provides the application layer that orchestrates the task list
// operations. The CLI is a thin adapter: it parses arguments into an
// Invocation and hands it to Dispatch together with a Context.
package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/store"
)

// Context holds shared dependencies for all operations.
type Context struct {
	Store    store.TaskStore
	Out      io.Writer
	Log      *log.Logger
	Renderer *ui.ListRenderer
}

// NewContext creates a Context with a plain renderer and a discarding logger.
// Callers override fields as needed.
func NewContext(s store.TaskStore, out io.Writer) *Context {
	return &Context{
		Store:    s,
		Out:      out,
		Log:      logger.Discard(),
		Renderer: ui.NewListRenderer("en", false),
	}
}
