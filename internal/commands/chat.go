package commands

import (
	"github.com/spf13/cobra"
)

// NewChatCmd creates the chat command
func NewChatCmd(opts *rootOptions, deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat with the Prometheus answer service.

Enter sends the question, Alt+Enter or Ctrl+J inserts a newline.
Ctrl+Y copies the last PromQL query. Esc or Ctrl+C quits.
Conversations are not stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(opts, deps)
		},
	}
}

func runChat(opts *rootOptions, deps *Dependencies) error {
	rt, err := newRuntime(opts, deps)
	if err != nil {
		return err
	}
	defer rt.Close()

	return deps.TUI.RunChat(rt.service, rt.tuiOptions())
}
