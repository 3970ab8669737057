package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/barstock/internal/app"
	"github.com/atomicstack/barstock/internal/catalog"
	"github.com/atomicstack/barstock/internal/config"
	"github.com/atomicstack/barstock/internal/format/table"
	"github.com/atomicstack/barstock/internal/inventory"
)

type loadFunc func(*cobra.Command) (config.Config, error)

var errResetNeedsYes = errors.New("refusing to reset without --yes when stdin is not a terminal")

func newShowCmd(load loadFunc) *cobra.Command {
	var format, tabName string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			backend, gateway, err := app.OpenStore(cfg.App)
			if err != nil {
				return err
			}
			defer backend.Close()

			tabs := gateway.Load()
			if tabName != "" {
				tabs, err = selectTab(tabs, tabName)
				if err != nil {
					return err
				}
			}
			return writeTabs(cmd.OutOrStdout(), tabs, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, yaml or json")
	cmd.Flags().StringVar(&tabName, "tab", "", "only print the tab with this name")
	return cmd
}

func newCatalogCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog used for suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			src, err := app.OpenCatalog(cmd.Context(), cfg.App)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if src == nil {
				fmt.Fprintln(out, "catalog disabled")
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.App.CatalogTimeout)
			defer cancel()
			for _, item := range catalog.Load(ctx, src) {
				fmt.Fprintln(out, item)
			}
			return nil
		},
	}
}

func newResetCmd(load loadFunc) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored tab, well and product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			backend, gateway, err := app.OpenStore(cfg.App)
			if err != nil {
				return err
			}
			defer backend.Close()
			if !yes {
				if !isInteractive() {
					return errResetNeedsYes
				}
				confirm := huh.NewConfirm().
					Title("Delete all stored inventory?").
					Description(fmt.Sprintf("Store: %s %s", cfg.App.Store, backend.Location())).
					Affirmative("Delete").
					Negative("Keep").
					Value(&yes)
				if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
					return fmt.Errorf("prompt cancelled: %w", err)
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
					return nil
				}
			}
			if err := gateway.Reset(); err != nil {
				return fmt.Errorf("reset store: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Inventory deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func selectTab(tabs []inventory.Tab, name string) ([]inventory.Tab, error) {
	for _, tab := range tabs {
		if tab.Name == name {
			return []inventory.Tab{tab}, nil
		}
	}
	return nil, fmt.Errorf("no tab named %q", name)
}

func writeTabs(w io.Writer, tabs []inventory.Tab, format string) error {
	if tabs == nil {
		tabs = []inventory.Tab{}
	}
	switch format {
	case "json":
		data, err := json.MarshalIndent(tabs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tabs); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		for _, line := range tabRows(tabs) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q (want table, yaml or json)", format)
}

// tabRows lays out one row per product. Empty wells get a row of their own
// so they are not lost from the listing.
func tabRows(tabs []inventory.Tab) []string {
	if len(tabs) == 0 {
		return []string{"No inventory stored."}
	}
	rows := [][]string{{"TAB", "WELL", "PRODUCT", "QTY"}}
	for _, tab := range tabs {
		if len(tab.Wells) == 0 {
			rows = append(rows, []string{tab.Name, "-"})
			continue
		}
		for _, well := range tab.Wells {
			if len(well.Products) == 0 {
				rows = append(rows, []string{tab.Name, well.Name, "-"})
				continue
			}
			for _, p := range well.Products {
				rows = append(rows, []string{tab.Name, well.Name, p.Name, strconv.Itoa(p.Quantity)})
			}
		}
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight})
}
