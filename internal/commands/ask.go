package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	apierrors "github.com/diogo/promchat/internal/errors"
	"github.com/diogo/promchat/internal/models"
	"github.com/diogo/promchat/internal/render"
)

var (
	colorSuccess = lipgloss.Color("#43a047")
	colorWarning = lipgloss.Color("#d32f2f")
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// askOptions holds the one-shot flags
type askOptions struct {
	file       string
	output     string
	raw        bool
	showResult bool
}

func addAskFlags(cmd *cobra.Command, ask *askOptions) {
	cmd.Flags().StringVarP(&ask.file, "file", "f", "", "Read the question from file")
	cmd.Flags().StringVarP(&ask.output, "output", "o", "", "Save the answer to file")
	cmd.Flags().BoolVar(&ask.raw, "raw", false, "Print only the answer text")
	cmd.Flags().BoolVar(&ask.showResult, "show-result", false, "Also print the raw query result")
}

// NewAskCmd creates the ask command
func NewAskCmd(opts *rootOptions, deps *Dependencies) *cobra.Command {
	ask := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and print the answer",
		Long: `Send one question to the answer service and print the answer.

On a terminal the answer is shown with its PromQL query. With --raw, or
when stdout is not a terminal, only the answer text is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, ok, err := readQuestion(cmd, args, ask.file)
			if err != nil {
				return err
			}
			if !ok {
				return apierrors.ErrEmptyQuestion
			}
			return runAsk(cmd, opts, ask, deps, question)
		},
	}

	addAskFlags(cmd, ask)
	return cmd
}

// runAsk sends a single question and prints the answer
func runAsk(cmd *cobra.Command, opts *rootOptions, ask *askOptions, deps *Dependencies, question string) error {
	if strings.TrimSpace(question) == "" {
		return apierrors.ErrEmptyQuestion
	}

	rt, err := newRuntime(opts, deps)
	if err != nil {
		return err
	}
	defer rt.Close()

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	decorated := !ask.raw && deps.stdoutIsTTY()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if rt.cfg.TUITheme != "" {
		render.SetTUITheme(rt.cfg.TUITheme)
	}

	var prog *progress
	if decorated {
		prog = newProgress(stderr, models.ThinkingText)
		prog.start()
	}

	answer, err := rt.service.Ask(ctx, question)
	if err != nil {
		if prog != nil {
			prog.stop()
		}
		return err
	}
	if prog != nil {
		prog.succeed("Done")
	}

	text := answer.Content()

	if rt.cfg.CopyToClipboard {
		if err := writeClipboard(text); err != nil {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorWarning).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			))
		} else if decorated {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	if ask.output != "" {
		if err := os.WriteFile(ask.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if decorated {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render(
				fmt.Sprintf("✓ Answer saved to %s", ask.output),
			))
		}
		return nil
	}

	if !decorated {
		fmt.Fprintln(stdout, text)
		if ask.showResult && answer.HasResult() {
			fmt.Fprintln(stdout, prettyJSON(answer.Result))
		}
		return nil
	}

	printAnswer(stdout, rt, answer, ask.showResult)
	return nil
}

// printAnswer draws the answer bubble the way the chat shows it
func printAnswer(w io.Writer, rt *runtime, answer *models.Answer, showResult bool) {
	theme := render.GetTUITheme()

	bubbleWidth := getTerminalWidth() - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	bubbleStyle := lipgloss.NewStyle().
		Background(theme.AssistantBubble).
		Foreground(theme.AssistantBubbleText).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Bold(true).Inherit(bubbleStyle)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	codeStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	msg := answer.Message()
	content := msg.Content
	if md := rt.markdownOptions(bubbleWidth - 4); md != nil {
		content = render.Answer(content, *md)
	}

	body := labelStyle.Render(models.RoleAssistant.Label()) + content
	fmt.Fprintln(w, bubbleStyle.Width(bubbleWidth).Render(body))

	if msg.HasPromQL() {
		fmt.Fprintln(w, dimStyle.Render("PromQL: ")+codeStyle.Render(msg.PromQL))
	}

	if showResult && answer.HasResult() {
		fmt.Fprintln(w, dimStyle.Render("Result:"))
		fmt.Fprintln(w, prettyJSON(answer.Result))
	}
}

// prettyJSON indents raw JSON, falling back to the input unchanged
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
