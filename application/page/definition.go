// Package page turns declarative page descriptions into a dispatchable
// binding surface bound to a live browser driver.
//
// A Definition is populated once, when the page type is declared, and is
// treated as immutable afterwards. Each test scenario then constructs an
// Instance against a driver; calls on the instance dispatch to the
// generated bindings first and fall back to the driver itself.
package page

import (
	"context"
	"time"

	"pagebind/application/naming"
	"pagebind/domain/entities"
	"pagebind/domain/interfaces"
)

// DefaultPresenceTimeout applies when DeclareExpectedElement is given a
// non-positive timeout.
const DefaultPresenceTimeout = 30 * time.Second

// ElementFn resolves one control against the driver. Bindings re-resolve
// on every call; nothing is memoized.
type ElementFn func(ctx context.Context, drv interfaces.Driver) (interfaces.Control, error)

// ActionFn is the body of an action binding. It receives the caller's
// positional arguments plus the instance itself, so an action can invoke
// other bindings on the same page.
type ActionFn func(ctx context.Context, inst *Instance, args ...any) (any, error)

type expectedElement struct {
	accessor string
	timeout  time.Duration
}

// Definition is the declaration registry for one page type.
type Definition struct {
	name            string
	navigation      string
	hasNavigation   bool
	expectedElement *expectedElement
	expectedTitle   *entities.TextMatch
	elements        map[string]ElementFn
	actions         map[string]ActionFn
}

// New - creates an empty page definition
func New(name string) *Definition {
	return &Definition{
		name:     name,
		elements: make(map[string]ElementFn),
		actions:  make(map[string]ActionFn),
	}
}

// Name returns the page-type name used in diagnostics.
func (d *Definition) Name() string { return d.name }

// DeclareNavigation registers the navigation target. ${VAR} references in
// the template are expanded against the environment when the hook runs.
func (d *Definition) DeclareNavigation(urlTemplate string) {
	d.navigation = urlTemplate
	d.hasNavigation = true
}

// DeclareExpectedElement registers the post-construction presence check
// for the named accessor. A non-positive timeout means
// DefaultPresenceTimeout.
func (d *Definition) DeclareExpectedElement(accessor string, timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultPresenceTimeout
	}
	d.expectedElement = &expectedElement{accessor: accessor, timeout: timeout}
}

// DeclareExpectedTitle registers the title verification hook. A literal
// expectation requires equality; a pattern expectation searches the title.
// A later call replaces the former.
func (d *Definition) DeclareExpectedTitle(expected *entities.TextMatch) {
	d.expectedTitle = expected
}

// DeclareElement registers a named element accessor. Accessor names must
// be pairwise unique within one definition.
func (d *Definition) DeclareElement(name string, fn ElementFn) error {
	if _, exists := d.elements[name]; exists {
		return &DuplicateDefinitionError{Page: d.name, Name: name}
	}
	d.elements[name] = fn
	return nil
}

// DeclareValue is an alias for DeclareElement, for accessors that read a
// derived value rather than a control.
func (d *Definition) DeclareValue(name string, fn ElementFn) error {
	return d.DeclareElement(name, fn)
}

// DeclareAction registers a named action binding. Redeclaring an action
// replaces the previous body without error, and action names are not
// checked against accessor names.
func (d *Definition) DeclareAction(name string, fn ActionFn) {
	d.actions[name] = fn
}

// DeclareLink derives an accessor named "<text>_link" and a click action
// named "<text>" from the link's visible text. Both names go through
// naming.Normalize; the accessor inherits DeclareElement's duplicate check.
func (d *Definition) DeclareLink(displayText string) error {
	locator := entities.ByLinkText(displayText)
	if err := d.DeclareElement(naming.Normalize(displayText+" link"), locatorElement(locator)); err != nil {
		return err
	}
	d.DeclareAction(naming.Normalize(displayText), clickAction(locator))
	return nil
}

// DeclareButton derives an accessor named "<text>_button" and a click
// action named "<text>" from the button's label.
func (d *Definition) DeclareButton(displayText string) error {
	locator := entities.ByButtonLabel(displayText)
	if err := d.DeclareElement(naming.Normalize(displayText+" button"), locatorElement(locator)); err != nil {
		return err
	}
	d.DeclareAction(naming.Normalize(displayText), clickAction(locator))
	return nil
}

// DeclareTextField registers a kind-tagged accessor for a freeform text
// input, usable with Fit and Instance.Fill.
func (d *Definition) DeclareTextField(name, selector string) error {
	return d.DeclareElement(name, locatorElement(entities.TextField(selector)))
}

// DeclareSelectList registers a kind-tagged accessor for a single-choice
// list, usable with Fit and Instance.Fill.
func (d *Definition) DeclareSelectList(name, selector string) error {
	return d.DeclareElement(name, locatorElement(entities.SelectList(selector)))
}

// locatorElement - wraps a locator into an accessor that re-resolves per call
func locatorElement(locator entities.Locator) ElementFn {
	return func(ctx context.Context, drv interfaces.Driver) (interfaces.Control, error) {
		return drv.ResolveControl(ctx, locator)
	}
}

// clickAction - wraps a locator into an action that resolves and clicks it
func clickAction(locator entities.Locator) ActionFn {
	return func(ctx context.Context, inst *Instance, _ ...any) (any, error) {
		control, err := inst.Driver().ResolveControl(ctx, locator)
		if err != nil {
			return nil, err
		}
		return nil, inst.Driver().Click(ctx, control)
	}
}
