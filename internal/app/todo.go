package app

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/types"
)

// Command names understood by Dispatch.
const (
	CommandList   = "list"
	CommandAdd    = "add"
	CommandRemove = "remove"
)

// Invocation is a parsed command line.
type Invocation struct {
	// Command is one of the Command* constants; empty means no arguments.
	Command string
	// Args are the words following the command.
	Args []string
	// Output is the list format (text, json, yaml, toml); list only.
	Output string
}

// AddResult describes a task appended by Add.
type AddResult struct {
	Index int
	Task  models.Task
}

// Dispatch runs inv against c. It never exits the process: every failure is
// returned as a *types.TodoError for the caller to report.
func Dispatch(c *Context, inv Invocation) error {
	c.Log.Debug("dispatch", "command", inv.Command, "args", len(inv.Args))

	switch inv.Command {
	case "":
		return types.NewError(types.KindArgument, "", "no arguments", nil)
	case CommandList:
		return c.List(inv.Output)
	case CommandAdd:
		res, err := c.Add(inv.Args)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.Out, c.Renderer.Confirm(fmt.Sprintf("Task #%d added: %s", res.Index, res.Task.Description)))
		return nil
	case CommandRemove:
		removed, err := c.Remove(inv.Args)
		if err != nil {
			return err
		}
		for _, r := range removed {
			fmt.Fprintln(c.Out, c.Renderer.Confirm(fmt.Sprintf("Task #%d (%s) removed", r.Index, r.Task.Description)))
		}
		return nil
	default:
		return types.NewError(types.KindArgument, "", fmt.Sprintf("unknown command %q", inv.Command), nil)
	}
}

// List writes the current list in the given format. It never saves.
func (c *Context) List(format string) error {
	return c.Renderer.Render(c.Out, c.Store.Tasks(), format)
}

// Add joins words with single spaces into one description, appends the task
// and persists the list.
func (c *Context) Add(words []string) (AddResult, error) {
	if len(words) == 0 {
		return AddResult{}, types.NewError(types.KindArgument, CommandAdd, "no description after 'add'", nil)
	}

	description := strings.Join(words, " ")
	if !utf8.ValidString(description) {
		return AddResult{}, types.NewError(types.KindArgument, CommandAdd, "description is not valid UTF-8", nil)
	}

	list := c.Store.Tasks()
	index := list.Len()
	task := list.Add(description)

	if err := c.Store.Save(); err != nil {
		return AddResult{}, err
	}
	c.Log.Debug("task added", "index", index)
	return AddResult{Index: index, Task: task}, nil
}

// Remove parses ids as non-negative indices, removes them with
// TaskList.RemoveMany and persists the list. Nothing is saved on error.
func (c *Context) Remove(ids []string) ([]models.RemovedTask, error) {
	if len(ids) == 0 {
		return nil, types.NewError(types.KindArgument, CommandRemove, "no task ids after 'remove'", nil)
	}

	indices, err := ParseIndices(ids)
	if err != nil {
		return nil, err
	}

	removed, err := c.Store.Tasks().RemoveMany(indices)
	if err != nil {
		return nil, err
	}

	if err := c.Store.Save(); err != nil {
		return nil, err
	}
	c.Log.Debug("tasks removed", "count", len(removed))
	return removed, nil
}

// ParseIndices converts ids to task indices. Each id must be a plain
// non-negative decimal integer.
func ParseIndices(ids []string) ([]int, error) {
	indices := make([]int, 0, len(ids))
	for _, id := range ids {
		n, err := strconv.ParseUint(id, 10, strconv.IntSize-1)
		if err != nil {
			return nil, types.NewError(types.KindArgument, CommandRemove, fmt.Sprintf("invalid task id %q", id), err)
		}
		indices = append(indices, int(n))
	}
	return indices, nil
}
