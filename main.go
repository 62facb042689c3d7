package main

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"pagebind/application/page"
	"pagebind/domain/entities"
	"pagebind/infrastructure/browser"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// playwrightDocs describes the Playwright documentation landing page well
// enough to exercise the declaration and construction surfaces.
func playwrightDocs() (*page.Definition, error) {
	def := page.New("playwright-docs")
	def.DeclareNavigation("https://playwright.dev")
	def.DeclareExpectedTitle(entities.Match(regexp.MustCompile(`Playwright`)))
	if err := def.DeclareLink("Get started"); err != nil {
		return nil, err
	}
	def.DeclareExpectedElement("get_started_link", 0)
	return def, nil
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Setup logger
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *logrus.Logger) error {
	def, err := playwrightDocs()
	if err != nil {
		return err
	}

	driver, err := browser.NewPlaywrightController(browser.ConfigFromEnv(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer driver.Close()

	ctx := context.Background()

	inst, err := def.Construct(ctx, driver, true)
	if err != nil {
		return err
	}

	title, err := inst.Call(ctx, "Title")
	if err != nil {
		return err
	}
	logger.Infof("Landed on %q", title)

	if _, err := inst.Do(ctx, "get_started"); err != nil {
		return err
	}

	url, err := inst.Call(ctx, "CurrentURL")
	if err != nil {
		return err
	}
	logger.Infof("Now at %v", url)

	return nil
}
