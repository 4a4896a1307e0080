package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wastenot/wastenot/internal/api"
	"github.com/wastenot/wastenot/internal/booking"
	"github.com/wastenot/wastenot/internal/chat"
	"github.com/wastenot/wastenot/internal/config"
	"github.com/wastenot/wastenot/internal/logging"
	"github.com/wastenot/wastenot/internal/models"
	"github.com/wastenot/wastenot/internal/render"
	"github.com/wastenot/wastenot/internal/telemetry"
	"github.com/wastenot/wastenot/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunApp(chatService *chat.Service, bookingService *booking.Service, opts render.Options) error
	RunChat(service *chat.Service, state chat.State, opts render.Options) error
	RunBooking(service *booking.Service) error
	RunLeaderboard(entries []models.LeaderboardEntry) error
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunApp(chatService *chat.Service, bookingService *booking.Service, opts render.Options) error {
	return tui.RunApp(chatService, bookingService, opts)
}

func (d *DefaultTUI) RunChat(service *chat.Service, state chat.State, opts render.Options) error {
	return tui.RunChat(service, state, opts)
}

func (d *DefaultTUI) RunBooking(service *booking.Service) error {
	return tui.RunBooking(service)
}

func (d *DefaultTUI) RunLeaderboard(entries []models.LeaderboardEntry) error {
	return tui.RunLeaderboard(entries)
}

// Dependencies holds the external dependencies for the commands.
// Anything left nil is built from the user configuration by Init.
type Dependencies struct {
	// Client is the Waste Not service client.
	Client api.ClientInterface

	// TUI is the terminal user interface.
	TUI TUIInterface

	Config config.Config
	Logger *zap.Logger

	Stdout io.Writer
	Stderr io.Writer

	ready   bool
	closers []func()
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:    &DefaultTUI{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Init loads configuration and builds the logger, telemetry and client.
// baseURL, when set, overrides the configured service address. Calling Init
// again is a no-op.
func (d *Dependencies) Init(ctx context.Context, baseURL string) error {
	if d.ready {
		return nil
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}

	// Injected client: tests and embedders supply the rest themselves
	if d.Client != nil {
		if d.Logger == nil {
			d.Logger = zap.NewNop()
		}
		if d.Config.BaseURL == "" {
			d.Config = config.DefaultConfig()
			d.Config.BaseURL = d.Client.BaseURL()
		}
		d.ready = true
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(d.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	d.Config = cfg

	if cfg.TUITheme != "" && render.SetTUITheme(cfg.TUITheme) {
		tui.UpdateTheme()
	}

	if d.Logger == nil {
		d.Logger = d.newLogger(cfg)
	}

	if cfg.Telemetry {
		if dir, err := config.EnsureConfigDir(); err == nil {
			shutdown, err := telemetry.Init(ctx, dir, Version)
			if err != nil {
				d.Logger.Warn("telemetry disabled", zap.Error(err))
			} else {
				d.closers = append(d.closers, func() {
					if err := shutdown(context.Background()); err != nil {
						d.Logger.Warn("telemetry shutdown", zap.Error(err))
					}
				})
			}
		}
	}

	client, err := api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout()),
		api.WithRateLimit(cfg.RateLimit),
		api.WithLogger(d.Logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	d.Client = client
	d.closers = append(d.closers, client.Close)

	d.Logger.Debug("client ready", zap.String("base_url", cfg.BaseURL))
	d.ready = true
	return nil
}

func (d *Dependencies) newLogger(cfg config.Config) *zap.Logger {
	path, err := config.GetLogPath(cfg)
	if err != nil {
		return zap.NewNop()
	}
	opts := logging.DefaultOptions(path)
	opts.Level = cfg.LogLevel

	logger, cleanup, err := logging.New(opts)
	if err != nil {
		fmt.Fprintf(d.Stderr, "Warning: logging disabled: %v\n", err)
		return zap.NewNop()
	}
	d.closers = append(d.closers, cleanup)
	return logger
}

// Close releases everything Init created, newest first
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// ChatService returns a chat service over the client
func (d *Dependencies) ChatService() *chat.Service {
	return chat.NewService(d.Client, d.Logger)
}

// BookingService returns a booking service over the client
func (d *Dependencies) BookingService() *booking.Service {
	return booking.NewService(d.Client, d.Logger)
}

// RenderOptions returns markdown options for the given width
func (d *Dependencies) RenderOptions(width int) render.Options {
	return render.OptionsFromConfig(d.Config, width)
}
