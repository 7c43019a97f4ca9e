package cli

import (
	"context"
	"fmt"
	"time"

	"page-search-go/pkg/cli/client"
	"page-search-go/pkg/cli/logger"
	"page-search-go/pkg/config"
	"page-search-go/pkg/controller"
)

type App struct {
	cfg        *config.Config
	configPath string
	store      config.Store
	endpoint   *config.Endpoint
	client     *client.Client
	ctrl       *controller.Controller
}

// NewApp wires the settings store, backend client and controller. pageURL,
// when set, overrides the configured page source.
func NewApp(cfg *config.Config, configPath string, pageURL string) (*App, error) {
	store := config.NewFileStore(cfg, configPath)
	endpoint, err := config.LoadEndpoint(store)
	if err != nil {
		return nil, fmt.Errorf("failed to load backend address: %w", err)
	}

	timeout := time.Duration(cfg.CLI.RequestTimeout) * time.Second
	apiClient := client.NewClient(endpoint, timeout)

	a := &App{
		cfg:        cfg,
		configPath: configPath,
		store:      store,
		endpoint:   endpoint,
		client:     apiClient,
	}
	a.ctrl = controller.New(apiClient, a.pageSource(pageURL))
	return a, nil
}

// pageSource picks where "the current page" comes from
func (a *App) pageSource(pageURL string) controller.PageSource {
	if pageURL != "" {
		return controller.StaticPage(pageURL)
	}
	if a.cfg.CLI.PageSource == "clipboard" {
		return controller.NewClipboardPage()
	}
	return nil
}

// initialURL returns the current page for prefilling the popup, or "" if
// the page source has nothing usable.
func (a *App) initialURL(ctx context.Context, pageURL string) string {
	source := a.pageSource(pageURL)
	if source == nil {
		return ""
	}
	u, err := source.CurrentURL(ctx)
	if err != nil {
		logger.Log("no initial page URL: %v", err)
		return ""
	}
	return u
}

// Controller exposes the action controller
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Endpoint exposes the backend address
func (a *App) Endpoint() *config.Endpoint {
	return a.endpoint
}
