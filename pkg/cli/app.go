package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"social-news-go/pkg/cli/client"
	"social-news-go/pkg/cli/links"
	"social-news-go/pkg/cli/logger"
	"social-news-go/pkg/cli/tui"
	"social-news-go/pkg/config"
	"social-news-go/pkg/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrSubmitFailed is returned by AddLink when the link only made it into
// the local list.
var ErrSubmitFailed = errors.New("link was not added to the server")

type App struct {
	cfg    *config.Config
	client *client.Client
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("base URL not configured")
	}

	a.client = client.NewClient(a.cfg.CLI.BaseURL, a.cfg.Timeout())
	return a.client, nil
}

// Run starts the interactive news list.
func (a *App) Run(ctx context.Context) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	logger.Info("starting TUI against %s", apiClient.BaseURL())
	model := tui.NewNewsModel(ctx, apiClient, workflow.New(nil))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// ListLinks fetches the feed once and prints it as a table. An unreachable
// server is not an error: the offline links are printed instead.
func (a *App) ListLinks(ctx context.Context, w io.Writer) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	flow := workflow.New(nil)
	res := flow.Bootstrap(ctx, apiClient)

	links.WriteTo(w, links.FormatTableOutput(flow.Store().Links()))
	if res.Offline {
		links.WriteTo(w, links.FormatOfflineNotice())
		if reason := userMessage(res.Err); reason != "" {
			links.WriteTo(w, reason+"\n")
		}
	}
	return nil
}

// AddLink submits one link and prints the resulting banner.
func (a *App) AddLink(ctx context.Context, w io.Writer, title, url, author string) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	flow := workflow.New(nil)
	out, err := flow.Submit(ctx, apiClient, title, url, author)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}

	links.WriteTo(w, links.FormatBanner(out.Banner))
	links.WriteTo(w, links.FormatLinkDetails(out.Link))

	if !out.Confirmed {
		if reason := userMessage(out.Err); reason != "" {
			links.WriteTo(w, "\n"+reason+"\n")
		}
		return ErrSubmitFailed
	}
	return nil
}

// userMessage extracts a readable reason from a transport failure.
func userMessage(err error) string {
	var te *client.TransportError
	if errors.As(err, &te) {
		return te.UserMessage()
	}
	return ""
}
