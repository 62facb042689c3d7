package page_test

import (
	"context"
	"time"

	"pagebind/domain/entities"
	"pagebind/domain/interfaces"
)

type waitCall struct {
	locator entities.Locator
	timeout time.Duration
}

type enterCall struct {
	locator entities.Locator
	text    string
}

type selectCall struct {
	locator entities.Locator
	match   *entities.TextMatch
}

type fakeControl struct {
	locator entities.Locator
}

func (c *fakeControl) Kind() entities.ControlKind { return c.locator.Kind }

var _ interfaces.Driver = (*fakeDriver)(nil)

// fakeDriver records every interaction in order and returns configurable
// results. Methods beyond the Driver interface are only reachable through
// the dispatch fallback.
type fakeDriver struct {
	ops []string

	navigateCalls []string
	resolveCalls  []entities.Locator
	waitCalls     []waitCall
	clickCalls    []entities.Locator
	clearCalls    []entities.Locator
	enterCalls    []enterCall
	selectCalls   []selectCall

	title string

	navigateErr error
	resolveErr  error
	waitErr     error
	clickErr    error
	clearErr    error
	enterErr    error
	selectErr   error
	titleErr    error

	refreshCalls int
	refreshErr   error
	events       []string
}

func (d *fakeDriver) Navigate(ctx context.Context, url string) error {
	d.ops = append(d.ops, "navigate")
	d.navigateCalls = append(d.navigateCalls, url)
	return d.navigateErr
}

func (d *fakeDriver) ResolveControl(ctx context.Context, locator entities.Locator) (interfaces.Control, error) {
	d.ops = append(d.ops, "resolve")
	d.resolveCalls = append(d.resolveCalls, locator)
	if d.resolveErr != nil {
		return nil, d.resolveErr
	}
	return &fakeControl{locator: locator}, nil
}

func (d *fakeDriver) WaitUntilPresent(ctx context.Context, control interfaces.Control, timeout time.Duration) error {
	d.ops = append(d.ops, "wait")
	d.waitCalls = append(d.waitCalls, waitCall{locator: control.(*fakeControl).locator, timeout: timeout})
	return d.waitErr
}

func (d *fakeDriver) Click(ctx context.Context, control interfaces.Control) error {
	d.ops = append(d.ops, "click")
	d.clickCalls = append(d.clickCalls, control.(*fakeControl).locator)
	return d.clickErr
}

func (d *fakeDriver) Clear(ctx context.Context, control interfaces.Control) error {
	d.ops = append(d.ops, "clear")
	d.clearCalls = append(d.clearCalls, control.(*fakeControl).locator)
	return d.clearErr
}

func (d *fakeDriver) EnterText(ctx context.Context, control interfaces.Control, text string) error {
	d.ops = append(d.ops, "enter")
	d.enterCalls = append(d.enterCalls, enterCall{locator: control.(*fakeControl).locator, text: text})
	return d.enterErr
}

func (d *fakeDriver) SelectOption(ctx context.Context, control interfaces.Control, match *entities.TextMatch) error {
	d.ops = append(d.ops, "select")
	d.selectCalls = append(d.selectCalls, selectCall{locator: control.(*fakeControl).locator, match: match})
	return d.selectErr
}

func (d *fakeDriver) Title(ctx context.Context) (string, error) {
	d.ops = append(d.ops, "title")
	return d.title, d.titleErr
}

func (d *fakeDriver) Refresh(ctx context.Context) error {
	d.ops = append(d.ops, "refresh")
	d.refreshCalls++
	return d.refreshErr
}

func (d *fakeDriver) Screenshot(ctx context.Context, path string) ([]byte, error) {
	d.ops = append(d.ops, "screenshot")
	return []byte("png:" + path), nil
}

func (d *fakeDriver) Subscribe(event string, callback func(string)) error {
	d.ops = append(d.ops, "subscribe")
	d.events = append(d.events, event)
	if callback != nil {
		callback(event + ":fired")
	}
	return nil
}
