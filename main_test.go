package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/barstock/internal/app"
	"github.com/atomicstack/barstock/internal/config"
	"github.com/atomicstack/barstock/internal/inventory"
	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/store"
	"github.com/atomicstack/barstock/internal/testutil"
)

func sampleTabs() []inventory.Tab {
	return []inventory.Tab{
		{ID: "a", Name: "Main Bar", Wells: []inventory.Well{
			{Name: "Well 1", Products: []inventory.ProductEntry{{Name: "Vodka", Quantity: 2}, {Name: "Campari", Quantity: 12}}},
			{Name: "Well 2", Products: []inventory.ProductEntry{}},
		}},
		{ID: "b", Name: "Patio", Wells: []inventory.Well{}},
	}
}

// runCommand executes the root command against a file store seeded with
// tabs and returns what it printed.
func runCommand(t *testing.T, tabs []inventory.Tab, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	if tabs != nil {
		backend, err := store.NewFile(dir)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		if err := store.NewGateway(backend).Save(tabs); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	t.Cleanup(logging.Disable)

	root := newRootCmd(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	base := []string{"--store", "file", "--db", dir, "--log-file", filepath.Join(dir, "barstock.log")}
	root.SetArgs(append(args, base...))
	err := root.Execute()
	return out.String(), err
}

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Store:      "sqlite",
			DBPath:     "bar.db",
			Width:      80,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"store": "sqlite",
			"db":    "bar.db",
			"width": "80",
		},
		Args: []string{"--db", "bar.db"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["db"] != "bar.db" {
		t.Fatalf("expected db flag %q, got %v", "bar.db", flagsValue["db"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestShowTableMatchesGolden(t *testing.T) {
	out, err := runCommand(t, sampleTabs(), "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	testutil.AssertGolden(t, "show_table.golden", out)
}

func TestShowEmptyStore(t *testing.T) {
	out, err := runCommand(t, nil, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if strings.TrimSpace(out) != "No inventory stored." {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestShowPrintsJSON(t *testing.T) {
	out, err := runCommand(t, sampleTabs(), "show", "--format", "json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var tabs []inventory.Tab
	if err := json.Unmarshal([]byte(out), &tabs); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if !reflect.DeepEqual(tabs, sampleTabs()) {
		t.Fatalf("unexpected tabs %#v", tabs)
	}
}

func TestShowFiltersByTabAsYAML(t *testing.T) {
	out, err := runCommand(t, sampleTabs(), "show", "--format", "yaml", "--tab", "Patio")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "name: Patio") || strings.Contains(out, "Main Bar") {
		t.Fatalf("expected only Patio in output, got:\n%s", out)
	}
}

func TestShowRejectsUnknownTabAndFormat(t *testing.T) {
	if _, err := runCommand(t, sampleTabs(), "show", "--tab", "Rooftop"); err == nil {
		t.Fatalf("expected an error for a missing tab")
	}
	if _, err := runCommand(t, sampleTabs(), "show", "--format", "csv"); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestResetWithYesDeletesInventory(t *testing.T) {
	dir := t.TempDir()
	backend, err := store.NewFile(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.NewGateway(backend).Save(sampleTabs()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	t.Cleanup(logging.Disable)

	root := newRootCmd(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"reset", "--yes", "--store", "file", "--db", dir, "--log-file", filepath.Join(dir, "barstock.log")})
	if err := root.Execute(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(out.String(), "Inventory deleted") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if tabs := store.NewGateway(backend).Load(); len(tabs) != 0 {
		t.Fatalf("expected store emptied, got %#v", tabs)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := runCommand(t, nil, "catalog", "--catalog", "none")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if strings.TrimSpace(out) != "catalog disabled" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCommand(t, nil, "catalog")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected builtin catalog items")
	}
}
