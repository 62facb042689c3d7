package page

import (
	"fmt"
	"time"
)

// DuplicateDefinitionError reports an element or value accessor name
// declared twice on the same page definition.
type DuplicateDefinitionError struct {
	Page string
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("page %q: accessor %q is already defined", e.Page, e.Name)
}

// UndefinedHookError reports a lifecycle hook invoked without ever being
// declared on the page definition.
type UndefinedHookError struct {
	Page string
	Hook string
}

func (e *UndefinedHookError) Error() string {
	return fmt.Sprintf("page %q: %s hook was never declared", e.Page, e.Hook)
}

// PresenceTimeoutError reports the expected element failing to become
// present within its declared timeout during construction.
type PresenceTimeoutError struct {
	Page     string
	Accessor string
	Timeout  time.Duration
	Err      error
}

func (e *PresenceTimeoutError) Error() string {
	return fmt.Sprintf("page %q: expected element %q not present after %s: %v", e.Page, e.Accessor, e.Timeout, e.Err)
}

func (e *PresenceTimeoutError) Unwrap() error { return e.Err }

// TitleMismatchError reports the actual title failing the declared
// expectation. It carries both values for diagnostics.
type TitleMismatchError struct {
	Page     string
	Expected string
	Actual   string
}

func (e *TitleMismatchError) Error() string {
	return fmt.Sprintf("page %q: expected title %s, got %q", e.Page, e.Expected, e.Actual)
}
