package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pagebind/domain/entities"
	"pagebind/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// PlaywrightController drives a Chromium instance through playwright. It is
// the primary Driver implementation.
type PlaywrightController struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger
}

var _ interfaces.Driver = (*PlaywrightController)(nil)

type playwrightControl struct {
	locator playwright.Locator
	kind    entities.ControlKind
}

func (c *playwrightControl) Kind() entities.ControlKind { return c.kind }

// NewPlaywrightController - launches Chromium and returns a controller
// bound to a fresh page
func NewPlaywrightController(cfg Config, logger *logrus.Logger) (*PlaywrightController, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMoMs > 0 {
		launchOptions.SlowMo = playwright.Float(cfg.SlowMoMs)
	}

	chromium, err := pw.Chromium.Launch(launchOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	}
	if cfg.UserAgent != "" {
		contextOptions.UserAgent = playwright.String(cfg.UserAgent)
	}

	browserContext, err := chromium.NewContext(contextOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	return &PlaywrightController{
		pw:      pw,
		browser: chromium,
		context: browserContext,
		page:    page,
		logger:  logger,
	}, nil
}

// Navigate - navigates to the specified URL
func (c *PlaywrightController) Navigate(ctx context.Context, url string) error {
	c.logger.Infof("Navigating to: %s", url)
	_, err := c.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(30000),
	})
	return err
}

// ResolveControl - resolves a locator into a page control
func (c *PlaywrightController) ResolveControl(ctx context.Context, locator entities.Locator) (interfaces.Control, error) {
	var loc playwright.Locator
	switch locator.Strategy {
	case entities.StrategyCSS:
		loc = c.page.Locator(locator.Value)
	case entities.StrategyLinkText:
		loc = c.page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{
			Name:  locator.Value,
			Exact: playwright.Bool(true),
		})
	case entities.StrategyButtonLabel:
		loc = c.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name:  locator.Value,
			Exact: playwright.Bool(true),
		})
	default:
		return nil, fmt.Errorf("unsupported locator strategy: %s", locator.Strategy)
	}
	return &playwrightControl{locator: loc, kind: locator.Kind}, nil
}

// WaitUntilPresent - blocks until the control is visible or the timeout elapses
func (c *PlaywrightController) WaitUntilPresent(ctx context.Context, control interfaces.Control, timeout time.Duration) error {
	pc, err := c.control(control)
	if err != nil {
		return err
	}
	return pc.locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// Click - clicks the control
func (c *PlaywrightController) Click(ctx context.Context, control interfaces.Control) error {
	pc, err := c.control(control)
	if err != nil {
		return err
	}
	return pc.locator.Click()
}

// Clear - empties the control's current content
func (c *PlaywrightController) Clear(ctx context.Context, control interfaces.Control) error {
	pc, err := c.control(control)
	if err != nil {
		return err
	}
	return pc.locator.Clear()
}

// EnterText - types text into the control as individual keystrokes
func (c *PlaywrightController) EnterText(ctx context.Context, control interfaces.Control, text string) error {
	pc, err := c.control(control)
	if err != nil {
		return err
	}
	return pc.locator.PressSequentially(text)
}

// SelectOption - selects the option whose visible text satisfies the match
func (c *PlaywrightController) SelectOption(ctx context.Context, control interfaces.Control, match *entities.TextMatch) error {
	pc, err := c.control(control)
	if err != nil {
		return err
	}
	if match == nil {
		return nil
	}

	if !match.IsPattern() {
		_, err = pc.locator.SelectOption(playwright.SelectOptionValues{
			Labels: &[]string{match.Text()},
		})
		return err
	}

	options := pc.locator.Locator("option")
	texts, err := options.AllTextContents()
	if err != nil {
		return err
	}
	for idx, text := range texts {
		if match.Matches(strings.TrimSpace(text)) {
			_, err = pc.locator.SelectOption(playwright.SelectOptionValues{
				Indexes: &[]int{idx},
			})
			return err
		}
	}
	return fmt.Errorf("no option matching %s", match)
}

// Title - returns the current page title
func (c *PlaywrightController) Title(ctx context.Context) (string, error) {
	return c.page.Title()
}

// CurrentURL - returns the current page URL
func (c *PlaywrightController) CurrentURL(ctx context.Context) (string, error) {
	return c.page.URL(), nil
}

// Screenshot - takes a screenshot of the current page
func (c *PlaywrightController) Screenshot(ctx context.Context, path string) error {
	_, err := c.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

// Close - closes the browser and stops playwright
func (c *PlaywrightController) Close() error {
	var closeErr error

	if c.context != nil {
		if err := c.context.Close(); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		c.context = nil
	}

	if c.browser != nil {
		if err := c.browser.Close(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		c.browser = nil
	}

	if c.pw != nil {
		if err := c.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		c.pw = nil
	}

	return closeErr
}

func (c *PlaywrightController) control(h interfaces.Control) (*playwrightControl, error) {
	pc, ok := h.(*playwrightControl)
	if !ok {
		return nil, fmt.Errorf("control %T does not belong to the playwright controller", h)
	}
	return pc, nil
}

func isClosedErr(err error) bool {
	return strings.Contains(err.Error(), "closed")
}
