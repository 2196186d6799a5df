package models

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/josephgoksu/todo/types"
)

// EmptyListMessage is printed instead of the listing when there are no tasks.
const EmptyListMessage = "No tasks in the list!"

// TaskList is the ordered collection of tasks and the entire application
// state. A task's position is its display index and its removal key; indices
// are 0-based and stay contiguous after every change.
type TaskList struct {
	entries []Task
}

// RemovedTask pairs a removed task with the index it had before the removal
// call started.
type RemovedTask struct {
	Index int
	Task  Task
}

// NewTaskList returns an empty list.
func NewTaskList() *TaskList {
	return &TaskList{entries: []Task{}}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.entries)
}

// At returns the task at index i.
func (l *TaskList) At(i int) (Task, bool) {
	if i < 0 || i >= len(l.entries) {
		return Task{}, false
	}
	return l.entries[i], true
}

// Tasks returns a copy of the entries in list order.
func (l *TaskList) Tasks() []Task {
	return slices.Clone(l.entries)
}

// Add appends a new task built from description and returns it. The new
// task's index is the length of the list before the call.
func (l *TaskList) Add(description string) Task {
	task := NewTask(description)
	l.entries = append(l.entries, task)
	return task
}

// Remove deletes the task at index, shifting later tasks down by one.
// An invalid index leaves the list unchanged.
func (l *TaskList) Remove(index int) (Task, error) {
	if index < 0 || index >= len(l.entries) {
		return Task{}, l.outOfRange(index)
	}
	task := l.entries[index]
	l.entries = slices.Delete(l.entries, index, index+1)
	return task, nil
}

// RemoveMany deletes several tasks addressed by their current indices.
//
// Indices are sorted ascending and removed in that order; each target is
// reduced by the number of tasks already removed, since every removal shifts
// the later entries left. Removing {1,3} from [A B C D] therefore removes B,
// then index 2 of [A C D], which is D.
//
// Duplicate indices are rejected. All indices are checked before anything is
// removed, so a failing call never leaves the list half-modified.
func (l *TaskList) RemoveMany(indices []int) ([]RemovedTask, error) {
	if len(indices) == 0 {
		return nil, types.NewError(types.KindArgument, "remove", "no task ids given", nil)
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	for i, index := range sorted {
		if i > 0 && sorted[i-1] == index {
			return nil, types.NewError(types.KindArgument, "remove", fmt.Sprintf("task id %d given more than once", index), nil)
		}
		if index < 0 || index >= len(l.entries) {
			return nil, l.outOfRange(index)
		}
	}

	removed := make([]RemovedTask, 0, len(sorted))
	for n, index := range sorted {
		task, err := l.Remove(index - n)
		if err != nil {
			return removed, err
		}
		removed = append(removed, RemovedTask{Index: index, Task: task})
	}
	return removed, nil
}

// Print writes "index: rendered task" for every entry, or EmptyListMessage.
// It does not modify the list.
func (l *TaskList) Print(w io.Writer) {
	if len(l.entries) == 0 {
		fmt.Fprintln(w, EmptyListMessage)
		return
	}
	fmt.Fprintln(w, "Tasks:")
	for i, task := range l.entries {
		fmt.Fprintf(w, "%d: %s\n", i, task.Render())
	}
}

// MarshalJSON encodes the list as a JSON array; an empty list is [] not null.
func (l *TaskList) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return marshalPlain(l.entries)
}

// UnmarshalJSON decodes a JSON array of task objects.
func (l *TaskList) UnmarshalJSON(data []byte) error {
	var entries []Task
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if entries == nil {
		return fmt.Errorf("%w: expected an array", ErrFormat)
	}
	l.entries = entries
	return nil
}

func (l *TaskList) outOfRange(index int) error {
	return types.NewError(types.KindOutOfRange, "remove",
		fmt.Sprintf("no task with index %d (list has %d)", index, len(l.entries)), nil)
}
