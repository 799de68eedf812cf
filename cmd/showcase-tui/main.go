// ABOUTME: Entry point for the showcase terminal client
// ABOUTME: Wires config, host identity, the API client, and the tab UI

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brigadress/showcase-tui/internal/api"
	"github.com/brigadress/showcase-tui/internal/config"
	"github.com/brigadress/showcase-tui/internal/identity"
	"github.com/brigadress/showcase-tui/internal/ui"
)

// Version is set by goreleaser at build time.
var version = "dev"

var (
	flagConfig  string
	flagServer  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "showcase-tui",
	Short: "Terminal client for the BrigAdress showcase backend",
	Long: `Terminal client for the BrigAdress showcase backend.

Browse FAQ, documents, and projects, submit a service request, and (with an
elevated host identity) triage leads and export them as CSV.

The host-issued credential is read from SHOWCASE_INIT_DATA or from
$XDG_CONFIG_HOME/showcase/initdata. Without it the client runs in browser
mode: content stays readable, privileged calls are refused by the backend.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/showcase/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(statusCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// getConfigPath returns the path to the client config file.
// Priority: SHOWCASE_CONFIG env var > XDG_CONFIG_HOME/showcase/config.yaml > ~/.config/showcase/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("SHOWCASE_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "showcase", "config.yaml")
}

// loadConfig resolves the effective configuration. A missing file is only an
// error when the user pointed at one explicitly; otherwise defaults apply.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	explicit := path != ""
	if path == "" {
		path = getConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
		} else {
			return nil, err
		}
	}

	if flagServer != "" {
		cfg.Server.BaseURL = flagServer
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// setup builds the shared dependency chain for all commands.
func setup() (*config.Config, identity.Identity, *api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, identity.Identity{}, nil, err
	}

	ident := identity.Detect(cfg.Identity.InitDataFile)
	client := api.New(cfg.Server.BaseURL, ident.InitData)
	return cfg, ident, client, nil
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, ident, client, err := setup()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to the configured file or nowhere
	logW := io.Writer(io.Discard)
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logW = f
	}
	logger := setupLogger(cfg.Logging, logW)

	logger.Info("starting showcase-tui",
		"server", cfg.Server.BaseURL,
		"in_host", ident.InHost(),
		"lead_limit", cfg.Admin.LeadLimit,
	)

	m := ui.New(client, ident, cfg.Admin.LeadLimit, cfg.Admin.ExportPath)

	// Alt screen doubles as the host handshake's viewport expansion;
	// entering it is fire-and-forget and never fails startup
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}

	logger.Info("showcase-tui exited")
	return nil
}

func setupLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = &colorHandler{
			level: level,
			w:     w,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	w      io.Writer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	// Format timestamp
	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	// Colorize level
	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	// Print message
	buf.WriteString(r.Message)

	// Print handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	// Print record attrs
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Fprint(h.w, buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		w:      h.w,
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		w:      h.w,
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}
