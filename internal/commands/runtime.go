package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/diogo/promchat/internal/api"
	"github.com/diogo/promchat/internal/config"
	"github.com/diogo/promchat/internal/logging"
	"github.com/diogo/promchat/internal/render"
	"github.com/diogo/promchat/internal/tui"
)

// runtime is everything a command needs once flags, env and the config
// file have been merged
type runtime struct {
	cfg       config.Config
	apiURL    string
	urlSource config.Source
	logger    zerolog.Logger
	closer    io.Closer
	service   api.AnswerService
}

// loadSettings merges the config file, .env and flag overrides
func loadSettings(opts *rootOptions) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, err
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.theme != "" {
		cfg.TUITheme = opts.theme
	}
	return cfg, nil
}

// newRuntime builds the logger and the answer service client
func newRuntime(opts *rootOptions, deps *Dependencies) (*runtime, error) {
	cfg, err := loadSettings(opts)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}
	rt.apiURL, rt.urlSource = config.ResolveAPIURL(opts.apiURL, cfg)

	logPath, err := config.GetLogPath(cfg)
	if err != nil {
		return nil, err
	}
	rt.logger, rt.closer, err = logging.New(logging.Options{Level: cfg.LogLevel, File: logPath})
	if err != nil {
		return nil, err
	}

	rt.logger.Info().
		Str("api_url", rt.apiURL).
		Str("api_url_source", string(rt.urlSource)).
		Str("version", Version).
		Msg("starting")

	if deps.Service != nil {
		rt.service = deps.Service
		return rt, nil
	}

	client, err := api.NewClient(rt.apiURL,
		api.WithLogger(rt.logger),
		api.WithProxy(cfg.Proxy),
		api.WithUserAgent("promchat/"+Version),
	)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	rt.service = client

	return rt, nil
}

// markdownOptions returns render options when markdown is enabled, else nil
func (rt *runtime) markdownOptions(width int) *render.Options {
	if !rt.cfg.Markdown.Enabled {
		return nil
	}
	opts := render.LoadOptions(rt.cfg.Markdown, width)
	return &opts
}

// tuiOptions converts the configuration into chat model options
func (rt *runtime) tuiOptions() tui.Options {
	return tui.Options{
		Theme:    rt.cfg.TUITheme,
		Markdown: rt.markdownOptions(80),
	}
}

// Close flushes and releases the log file
func (rt *runtime) Close() {
	if rt.closer != nil {
		_ = rt.closer.Close()
	}
}
