package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"page-search-go/pkg/cli/logger"
	"page-search-go/pkg/cli/output"
	"page-search-go/pkg/cli/tui"
	"page-search-go/pkg/config"
	"page-search-go/pkg/controller"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
)

const appMetadataKey = "app"

// NewCommandLine builds the page-search command tree. Running it without a
// subcommand opens the interactive popup.
func NewCommandLine() *cli.App {
	return &cli.App{
		Name:  "page-search",
		Usage: "index, summarize and search web pages through a local search backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to config file (default ~/.config/page-search/config.toml)"},
			&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "page URL (defaults to the clipboard)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(output.FormatText), Usage: "result format: text or html"},
		},
		Before: setupAction,
		After: func(c *cli.Context) error {
			logger.CloseLog()
			return nil
		},
		Action: TUIAction,
		Commands: []*cli.Command{
			{Name: "tui", Usage: "open the interactive popup", Action: TUIAction},
			{Name: "health", Usage: "check whether the backend is reachable", Action: HealthAction},
			{Name: "index", Usage: "index the current page", ArgsUsage: "[url]", Action: IndexAction},
			{Name: "summarize", Usage: "summarize the current page", ArgsUsage: "[url]", Action: SummarizeAction},
			{Name: "ask", Usage: "ask a question over indexed pages", ArgsUsage: "<question>", Action: AskAction},
			{Name: "pages", Usage: "list indexed pages", Action: PagesAction},
			{Name: "delete", Usage: "remove a page from the index", ArgsUsage: "<url>", Action: DeleteAction},
			{Name: "stats", Usage: "show index statistics", Action: StatsAction},
			{
				Name:  "config",
				Usage: "show or change configuration",
				Subcommands: []*cli.Command{
					{Name: "show", Usage: "print the configuration", Action: ConfigShowAction},
					{Name: "set", Usage: "set a value", ArgsUsage: "section.key=value", Action: ConfigSetAction},
				},
			},
		},
	}
}

func setupAction(c *cli.Context) error {
	var (
		cfg *config.Config
		err error
	)
	path := c.String("config")
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Setup(cfg.CLI.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	app, err := NewApp(cfg, path, c.String("url"))
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[appMetadataKey] = app
	return nil
}

func appFrom(c *cli.Context) *App {
	return c.App.Metadata[appMetadataKey].(*App)
}

func formatFrom(c *cli.Context) (output.Format, error) {
	return output.ParseFormat(c.String("format"))
}

// printOutcome writes an action result and turns failures into a non-zero exit
func printOutcome(c *cli.Context, out controller.Outcome) error {
	format, err := formatFrom(c)
	if err != nil {
		return err
	}
	if out.Skipped && out.Err == nil {
		return nil
	}
	if out.Display.Empty() && out.Err != nil {
		return out.Err
	}
	output.Write(c.App.Writer, output.FormatDisplay(out.Display, format, output.DefaultWidth))
	if out.Err != nil {
		return cli.Exit("", 1)
	}
	return nil
}

// TUIAction runs the interactive popup
func TUIAction(c *cli.Context) error {
	a := appFrom(c)
	model := tui.NewPopupModel(a.ctrl, a.endpoint, a.initialURL(c.Context, c.String("url")))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running popup: %w", err)
	}
	return nil
}

func HealthAction(c *cli.Context) error {
	a := appFrom(c)
	if a.ctrl.CheckHealth(ctx(c)) {
		fmt.Fprintf(c.App.Writer, "✓ Backend online at %s\n", a.endpoint.BaseURL())
		return nil
	}
	return cli.Exit(fmt.Sprintf("❌ Backend offline at %s", a.endpoint.BaseURL()), 1)
}

func IndexAction(c *cli.Context) error {
	a := appFrom(c)
	if u := c.Args().First(); u != "" {
		return printOutcome(c, a.ctrl.IndexPage(ctx(c), u))
	}
	return printOutcome(c, a.ctrl.IndexCurrentPage(ctx(c)))
}

func SummarizeAction(c *cli.Context) error {
	a := appFrom(c)
	if u := c.Args().First(); u != "" {
		return printOutcome(c, a.ctrl.Summarize(ctx(c), u))
	}
	return printOutcome(c, a.ctrl.SummarizeCurrentPage(ctx(c)))
}

func AskAction(c *cli.Context) error {
	a := appFrom(c)
	question := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(question) == "" {
		return cli.Exit("a question is required", 2)
	}
	return printOutcome(c, a.ctrl.Query(ctx(c), question))
}

func PagesAction(c *cli.Context) error {
	a := appFrom(c)
	snap, err := a.ctrl.RefreshPages(ctx(c))
	if err != nil {
		return err
	}
	output.Write(c.App.Writer, output.FormatPagesTable(snap.Entries))
	return nil
}

func DeleteAction(c *cli.Context) error {
	a := appFrom(c)
	target := c.Args().First()
	if target == "" {
		return cli.Exit("a page URL is required", 2)
	}
	return printOutcome(c, a.ctrl.Delete(ctx(c), target))
}

func StatsAction(c *cli.Context) error {
	a := appFrom(c)
	rows, err := a.ctrl.Stats(ctx(c))
	if err != nil {
		return err
	}
	output.Write(c.App.Writer, output.FormatStats(rows))
	return nil
}

func ConfigShowAction(c *cli.Context) error {
	return appFrom(c).ShowConfig(c.App.Writer)
}

func ConfigSetAction(c *cli.Context) error {
	if err := appFrom(c).SetConfig(c.Args().First()); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}
	fmt.Fprintln(c.App.Writer, "Configuration updated successfully")
	return nil
}

func ctx(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
