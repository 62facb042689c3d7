package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"pagebind/domain/entities"
	"pagebind/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// SeleniumController is the alternate Driver implementation, backed by a
// local chromedriver.
type SeleniumController struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

var _ interfaces.Driver = (*SeleniumController)(nil)

// seleniumControl carries the lookup, not the element. Elements are found
// again on every interaction so a stale reference never leaks out.
type seleniumControl struct {
	by    string
	value string
	kind  entities.ControlKind
}

func (c *seleniumControl) Kind() entities.ControlKind { return c.kind }

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(cfg Config) (string, error) {
	if cfg.DriverPath != "" {
		if _, err := os.Stat(cfg.DriverPath); err == nil {
			return cfg.DriverPath, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}
	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH")
}

// NewSeleniumController - starts chromedriver and returns a controller
// bound to a fresh session
func NewSeleniumController(cfg Config, logger *logrus.Logger) (*SeleniumController, error) {
	driverPath, err := findChromeDriver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, cfg.DriverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	args := []string{
		"--disable-blink-features=AutomationControlled",
		"--disable-dev-shm-usage",
		"--no-sandbox",
	}
	if cfg.Headless {
		args = append(args, "--headless=new")
	}
	if cfg.UserAgent != "" {
		args = append(args, fmt.Sprintf("--user-agent=%s", cfg.UserAgent))
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}
	caps.AddChrome(chrome.Capabilities{Args: args})

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", cfg.DriverPort))
	if err != nil {
		service.Stop()
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &SeleniumController{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// Navigate - navigates browser to specified URL
func (s *SeleniumController) Navigate(ctx context.Context, url string) error {
	s.logger.Infof("Navigating to: %s", url)
	return s.wd.Get(url)
}

// ResolveControl - resolves a locator into a control handle
func (s *SeleniumController) ResolveControl(ctx context.Context, locator entities.Locator) (interfaces.Control, error) {
	switch locator.Strategy {
	case entities.StrategyCSS:
		return &seleniumControl{by: selenium.ByCSSSelector, value: locator.Value, kind: locator.Kind}, nil
	case entities.StrategyLinkText:
		return &seleniumControl{by: selenium.ByLinkText, value: locator.Value, kind: locator.Kind}, nil
	case entities.StrategyButtonLabel:
		xpath := fmt.Sprintf(
			"//button[normalize-space(.)=%q] | //input[(@type='submit' or @type='button') and @value=%q]",
			locator.Value, locator.Value,
		)
		return &seleniumControl{by: selenium.ByXPATH, value: xpath, kind: locator.Kind}, nil
	default:
		return nil, fmt.Errorf("unsupported locator strategy: %s", locator.Strategy)
	}
}

// WaitUntilPresent - polls until the control is present or the timeout elapses
func (s *SeleniumController) WaitUntilPresent(ctx context.Context, control interfaces.Control, timeout time.Duration) error {
	sc, err := s.control(control)
	if err != nil {
		return err
	}

	err = s.wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		elements, findErr := wd.FindElements(sc.by, sc.value)
		if findErr != nil {
			return false, nil
		}
		return len(elements) > 0, nil
	}, timeout)
	if err != nil {
		return fmt.Errorf("element %s=%q not present: %w", sc.by, sc.value, err)
	}
	return nil
}

// Click - clicks the control
func (s *SeleniumController) Click(ctx context.Context, control interfaces.Control) error {
	element, err := s.find(control)
	if err != nil {
		return err
	}
	return element.Click()
}

// Clear - empties the control's current content
func (s *SeleniumController) Clear(ctx context.Context, control interfaces.Control) error {
	element, err := s.find(control)
	if err != nil {
		return err
	}
	return element.Clear()
}

// EnterText - types text into the control as keystrokes
func (s *SeleniumController) EnterText(ctx context.Context, control interfaces.Control, text string) error {
	element, err := s.find(control)
	if err != nil {
		return err
	}
	return element.SendKeys(text)
}

// SelectOption - selects the option whose visible text satisfies the match
func (s *SeleniumController) SelectOption(ctx context.Context, control interfaces.Control, match *entities.TextMatch) error {
	if match == nil {
		return nil
	}
	element, err := s.find(control)
	if err != nil {
		return err
	}

	options, err := element.FindElements(selenium.ByTagName, "option")
	if err != nil {
		return fmt.Errorf("failed to list options: %w", err)
	}
	for _, option := range options {
		text, textErr := option.Text()
		if textErr != nil {
			continue
		}
		if match.Matches(strings.TrimSpace(text)) {
			return option.Click()
		}
	}
	return fmt.Errorf("no option matching %s", match)
}

// Title - returns the current page title
func (s *SeleniumController) Title(ctx context.Context) (string, error) {
	return s.wd.Title()
}

// CurrentURL - returns the current page URL
func (s *SeleniumController) CurrentURL(ctx context.Context) (string, error) {
	return s.wd.CurrentURL()
}

// Screenshot - takes a screenshot and writes it to path
func (s *SeleniumController) Screenshot(ctx context.Context, path string) error {
	data, err := s.wd.Screenshot()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Close - quits the session and stops chromedriver
func (s *SeleniumController) Close() error {
	var closeErr error

	if s.wd != nil {
		if err := s.wd.Quit(); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		s.wd = nil
	}

	if s.service != nil {
		if err := s.service.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop chromedriver: %w", err)
		}
		s.service = nil
	}

	return closeErr
}

func (s *SeleniumController) control(h interfaces.Control) (*seleniumControl, error) {
	sc, ok := h.(*seleniumControl)
	if !ok {
		return nil, fmt.Errorf("control %T does not belong to the selenium controller", h)
	}
	return sc, nil
}

// find - resolves the control into a live element, fresh on every call
func (s *SeleniumController) find(control interfaces.Control) (selenium.WebElement, error) {
	sc, err := s.control(control)
	if err != nil {
		return nil, err
	}
	element, err := s.wd.FindElement(sc.by, sc.value)
	if err != nil {
		return nil, fmt.Errorf("element not found: %w", err)
	}
	return element, nil
}
