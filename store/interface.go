package store

import "github.com/josephgoksu/todo/models"

// TaskStore defines the interface for task persistence.
// A store is opened once per invocation, hands out the in-memory list for
// mutation, and writes the entire list back on Save.
type TaskStore interface {
	// Tasks returns the live list. Changes made to it are persisted by Save.
	Tasks() *models.TaskList

	// Save replaces the stored contents with the encoding of the current list.
	// There is no partial or incremental write.
	Save() error

	// Path returns the storage file location.
	Path() string

	// Created reports whether the storage file did not exist and was
	// bootstrapped with an empty list when the store was opened.
	Created() bool

	// Close releases the file handle held since opening.
	Close() error
}
