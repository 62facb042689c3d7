package interfaces

import (
	"context"
	"time"

	"pagebind/domain/entities"
)

// Control is an opaque handle to a control resolved by a Driver. Handles
// are produced fresh on every resolution and are only valid against the
// driver that produced them.
type Control interface {
	// Kind reports the capability contract the control supports
	Kind() entities.ControlKind
}

// Driver defines the browser automation capabilities the binding layer
// consumes. Every operation blocks until the browser responds; nothing is
// retried here.
type Driver interface {
	// Navigate navigates the browser to a URL
	Navigate(ctx context.Context, url string) error

	// ResolveControl resolves a locator into a control handle
	ResolveControl(ctx context.Context, locator entities.Locator) (Control, error)

	// WaitUntilPresent blocks until the control is present or the timeout elapses
	WaitUntilPresent(ctx context.Context, control Control, timeout time.Duration) error

	// Click performs the control's primary interaction
	Click(ctx context.Context, control Control) error

	// Clear empties a freeform text control
	Clear(ctx context.Context, control Control) error

	// EnterText types text into a control as individual keystrokes
	EnterText(ctx context.Context, control Control, text string) error

	// SelectOption picks the option whose visible text satisfies the match
	SelectOption(ctx context.Context, control Control, match *entities.TextMatch) error

	// Title returns the current page title
	Title(ctx context.Context) (string, error)
}
