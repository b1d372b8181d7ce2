package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the news list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.app.ListLinks(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newAddCmd(state *appState) *cobra.Command {
	var title, url, author string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.app.AddLink(cmd.Context(), cmd.OutOrStdout(), title, url, author)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().StringVar(&url, "url", "", "page URL")
	cmd.Flags().StringVar(&author, "author", "", "your name")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}

func newConfigCmd(state *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.app.ShowConfig(cmd.OutOrStdout())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "set section.key=value",
		Short:   "Set a configuration value",
		Example: "  social-news config set cli.base_url=http://localhost:3000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.app.SetConfig(args[0]); err != nil {
				return fmt.Errorf("failed to set config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration updated successfully")
			return nil
		},
	})

	return cmd
}
