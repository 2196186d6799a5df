package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the persisted timestamp format (YYYY-MM-DD HH:MM:SS).
	DateLayout = "2006-01-02 15:04:05"

	// DisplayLayout is the long form used when listing tasks.
	DisplayLayout = "Monday, January 2, 2006 15:04:05"
)

// ErrFormat is returned when a task object cannot be decoded.
var ErrFormat = errors.New("invalid task format")

// Task is a single to-do entry. Tasks have no identifier of their own: two
// tasks with the same text are told apart only by their position in a TaskList.
type Task struct {
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"date"`
}

// taskJSON is the on-disk shape of a Task.
type taskJSON struct {
	Description string `json:"description"`
	Date        string `json:"date"`
}

// NewTask creates a task stamped with the current local time, truncated to the
// second so that it survives a round trip through DateLayout.
func NewTask(description string) Task {
	return Task{
		Description: description,
		CreatedAt:   time.Now().Truncate(time.Second),
	}
}

// MarshalJSON encodes the task as {"description": ..., "date": ...}.
func (t Task) MarshalJSON() ([]byte, error) {
	return marshalPlain(taskJSON{
		Description: t.Description,
		Date:        t.CreatedAt.Format(DateLayout),
	})
}

// UnmarshalJSON decodes a task object. Both fields are required, must be
// strings, and the date must match DateLayout exactly, with no fractional
// seconds.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description *string `json:"description"`
		Date        *string `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if raw.Description == nil {
		return fmt.Errorf("%w: missing field \"description\"", ErrFormat)
	}
	if raw.Date == nil {
		return fmt.Errorf("%w: missing field \"date\"", ErrFormat)
	}

	// Checked in UTC so a wall time skipped by a DST change still matches.
	exact, err := time.Parse(DateLayout, *raw.Date)
	if err != nil {
		return fmt.Errorf("%w: date %q: %v", ErrFormat, *raw.Date, err)
	}
	if exact.Format(DateLayout) != *raw.Date {
		return fmt.Errorf("%w: date %q does not match %s", ErrFormat, *raw.Date, DateLayout)
	}
	created, err := time.ParseInLocation(DateLayout, *raw.Date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: date %q: %v", ErrFormat, *raw.Date, err)
	}

	*t = Task{Description: *raw.Description, CreatedAt: created}
	return nil
}

// Render returns the display form of the task: the long creation date
// followed by the description. It is never persisted.
func (t Task) Render() string {
	return t.CreatedAt.Format(DisplayLayout) + " " + t.Description
}

// marshalPlain encodes v without escaping <, > and & so the storage file keeps
// descriptions readable.
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
