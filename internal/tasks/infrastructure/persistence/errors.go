package persistence

import "errors"

// ErrTaskNotFound is returned when a task cannot be located by ID.
var ErrTaskNotFound = errors.New("task not found")
