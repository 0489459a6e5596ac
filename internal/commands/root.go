// Package commands provides CLI commands for promchat.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/promchat/internal/models"
	"github.com/diogo/promchat/internal/render"
	"github.com/diogo/promchat/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootOptions holds the global flags
type rootOptions struct {
	apiURL   string
	logLevel string
	logFile  string
	theme    string
}

// NewRootCmd builds the command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	opts := &rootOptions{}
	ask := &askOptions{}

	cmd := &cobra.Command{
		Use:   "promchat [question]",
		Short: "Terminal chat for a Prometheus question-answering service",
		Long: `promchat sends natural-language questions about your Prometheus cluster
to an answer service and shows the answer together with the PromQL it ran.

The answer service URL comes from --api-url, then the ` + models.APIURLEnv + `
environment variable (a .env file in the working directory is read too),
then api_url in ~/.promchat/config.json, then ` + models.DefaultAPIURL + `.

Examples:
  promchat                                    Start interactive chat
  promchat "Which targets are down?"          Ask a single question
  promchat -f question.txt                    Read the question from a file
  echo "CPU usage of node-1?" | promchat      Read the question from stdin
  promchat ask --show-result "Is etcd up?"    Include the raw query result
  promchat config                             Show the effective settings`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "promchat %s (built %s)\n", Version, BuildTime)
				return nil
			}

			question, ok, err := readQuestion(cmd, args, ask.file)
			if err != nil {
				return err
			}
			if !ok {
				return runChat(opts, deps)
			}
			return runAsk(cmd, opts, ask, deps, question)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Answer service URL (overrides "+models.APIURLEnv+" and config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Log file path (default ~/.promchat/promchat.log)")
	cmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "TUI theme ("+strings.Join(render.TUIThemeNames(), ", ")+")")
	addAskFlags(cmd, ask)
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewChatCmd(opts, deps))
	cmd.AddCommand(NewAskCmd(opts, deps))
	cmd.AddCommand(NewConfigCmd(opts))

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd(NewDependencies()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err))
		os.Exit(1)
	}
}

// readQuestion picks the question from -f, the positional argument or
// piped stdin, in that order. ok is false when there is none.
func readQuestion(cmd *cobra.Command, args []string, file string) (string, bool, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(data)), true, nil
	}

	if len(args) > 0 {
		return args[0], true, nil
	}

	in := cmd.InOrStdin()
	if !hasPipedInput(in) {
		return "", false, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// hasPipedInput reports whether in is something other than a terminal
func hasPipedInput(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return in != nil
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
