package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/barstock/internal/app"
	"github.com/atomicstack/barstock/internal/config"
	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/logging/events"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Environ())
	if err := root.ExecuteContext(ctx); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags default to the matching
// BARSTOCK_* variables in environ.
func newRootCmd(environ []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "barstock",
		Short:         "Count bar inventory by tab, well and product",
		Long:          "barstock is a terminal inventory counter: products are entered into wells, wells are grouped into tabs, and every change is saved immediately.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.Register(root.PersistentFlags(), environ)
	load := func(cmd *cobra.Command) (config.Config, error) {
		cfg, err := flags.Config(os.Args[1:])
		if err != nil {
			return config.Config{}, err
		}
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, fmt.Errorf("configuration error: %w", err)
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cmd, cfg)
		return cfg, nil
	}

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := load(cmd)
		if err != nil {
			return err
		}
		err = app.Run(cmd.Context(), cfg.App)
		events.App.Exit(err)
		return err
	}
	root.AddCommand(newShowCmd(load), newCatalogCmd(load), newResetCmd(load))
	return root
}

func traceStartup(cmd *cobra.Command, cfg config.Config) {
	payload := startupTracePayload(cfg)
	payload["command"] = cmd.CommandPath()
	events.App.Start(payload)
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg.Redacted(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and
// their sizes. The first sized terminal becomes the detected one.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	details := ttyDetails{Probes: make([]ttyProbeResult, 0, len(probes))}
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.file.Fd())
		entry.IsTerminal = term.IsTerminal(fd)
		if entry.IsTerminal {
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				entry.Error = err.Error()
			default:
				entry.Width, entry.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, entry)
	}
	return details
}

// isInteractive reports whether stdin is a terminal a prompt can read from.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
