package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/catalog"
	"github.com/atomicstack/barstock/internal/inventory"
	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/logging/events"
	"github.com/atomicstack/barstock/internal/store"
	"github.com/atomicstack/barstock/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Store          string
	DBPath         string
	Catalog        string
	CatalogTimeout time.Duration
	S3Region       string
	S3Endpoint     string
	S3PathStyle    bool
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool

	// Static S3 credentials; the default AWS chain is used when
	// S3AccessKeyID is empty.
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// OpenStore opens the configured backend and wraps it in a gateway. The
// caller owns the backend and must close it.
func OpenStore(cfg Config) (store.Backend, *store.Gateway, error) {
	backend, err := store.Open(store.Driver(cfg.Store), cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	events.Store.Open(cfg.Store, backend.Location())
	return backend, store.NewGateway(backend), nil
}

// OpenCatalog resolves the configured catalog location. A nil source with a
// nil error means the catalog is disabled.
func OpenCatalog(ctx context.Context, cfg Config) (catalog.Source, error) {
	src, err := catalog.NewSource(ctx, cfg.Catalog, catalogOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", cfg.Catalog, err)
	}
	return src, nil
}

func catalogOptions(cfg Config) catalog.Options {
	return catalog.Options{
		Timeout: cfg.CatalogTimeout,
		S3: catalog.S3Options{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		},
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	backend, gateway, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	session := inventory.Open(gateway)

	src, err := OpenCatalog(ctx, cfg)
	if err != nil {
		// suggestions fall back to the active tab's products
		logging.Error(err)
		src = nil
	}

	model := ui.NewModel(session, ui.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		ShowFooter:     cfg.ShowFooter,
		Verbose:        cfg.Verbose,
		Catalog:        src,
		CatalogTimeout: cfg.CatalogTimeout,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
