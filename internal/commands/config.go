package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/promchat/internal/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the settings promchat would use, after merging flags, the
environment, .env and ~/.promchat/config.json, and where the answer
service URL came from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadSettings(opts)
	if err != nil {
		return err
	}

	apiURL, source := config.ResolveAPIURL(opts.apiURL, cfg)
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "config file\t%s\n", configPath)
	fmt.Fprintf(w, "api_url\t%s (%s)\n", apiURL, source)
	fmt.Fprintf(w, "proxy\t%s\n", valueOrNone(cfg.Proxy))
	fmt.Fprintf(w, "tui_theme\t%s\n", cfg.TUITheme)
	fmt.Fprintf(w, "copy_to_clipboard\t%t\n", cfg.CopyToClipboard)
	fmt.Fprintf(w, "log_level\t%s\n", cfg.LogLevel)
	fmt.Fprintf(w, "log_file\t%s\n", logPath)
	fmt.Fprintf(w, "markdown.enabled\t%t\n", cfg.Markdown.Enabled)
	fmt.Fprintf(w, "markdown.style\t%s\n", cfg.Markdown.Style)
	return w.Flush()
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func valueOrNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
