package commands

import (
	"github.com/diogo/promchat/internal/api"
	"github.com/diogo/promchat/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(service api.AnswerService, opts tui.Options) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Service overrides the HTTP answer service client when set.
	Service api.AnswerService

	// TUI is the terminal user interface.
	TUI TUIInterface

	// IsTTY reports whether stdout is a terminal. Nil means detect.
	IsTTY func() bool
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(service api.AnswerService, opts tui.Options) error {
	return tui.RunChat(service, opts)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI: &DefaultTUI{},
	}
}

func (d *Dependencies) stdoutIsTTY() bool {
	if d.IsTTY != nil {
		return d.IsTTY()
	}
	return isStdoutTTY()
}
