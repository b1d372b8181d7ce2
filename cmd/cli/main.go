package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"social-news-go/pkg/cli"
	"social-news-go/pkg/cli/links"
	"social-news-go/pkg/cli/logger"
	"social-news-go/pkg/config"
	"social-news-go/pkg/utils"

	"github.com/spf13/cobra"
)

// appState is filled in by the root command's pre-run hook.
type appState struct {
	baseURL string
	app     *cli.App
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer logger.CloseLog()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		links.WriteTo(stderr, links.FormatErrorMessage(err))
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	state := &appState{}

	rootCmd := &cobra.Command{
		Use:           "social-news",
		Short:         "Browse and share links on the social news board",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg, err := fileCfg.Effective()
			if err != nil {
				return err
			}
			if state.baseURL != "" {
				baseURL, err := utils.ValidateBaseURL(state.baseURL)
				if err != nil {
					return fmt.Errorf("--base-url: %w", err)
				}
				cfg.CLI.BaseURL = baseURL
			}

			if err := logger.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			state.app = cli.NewApp(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.app.Run(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&state.baseURL, "base-url", "", "API host (overrides config and BASE_URL)")

	rootCmd.AddCommand(newListCmd(state))
	rootCmd.AddCommand(newAddCmd(state))
	rootCmd.AddCommand(newConfigCmd(state))

	return rootCmd
}
