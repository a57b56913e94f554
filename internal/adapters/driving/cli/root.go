// Package cli implements the restomenu command line interface.
// Commands act through the driving ports; wiring of the catalog source
// and config store happens lazily so commands that need neither
// (version, demo) run without any local setup.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	catalogfile "github.com/8ui/restomenu-core-sub000/internal/adapters/driven/catalog/file"
	configfile "github.com/8ui/restomenu-core-sub000/internal/adapters/driven/config/file"
	"github.com/8ui/restomenu-core-sub000/internal/core/ports/driven"
	"github.com/8ui/restomenu-core-sub000/internal/core/ports/driving"
	"github.com/8ui/restomenu-core-sub000/internal/core/services"
	"github.com/8ui/restomenu-core-sub000/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Wired collaborators. Tests swap these for mocks; ensure* helpers fill
// them in on first use otherwise.
var (
	menuService driving.MenuService
	configStore driven.ConfigStore
)

// Global flags.
var (
	catalogPath string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "restomenu",
	Short: "Query, filter and rank restaurant menu catalogs",
	Long: `Restomenu organizes a catalog snapshot into menu sections and answers
queries over it: free-text search with relevance ranking, category and
tag filtering, price ranges, availability scoping, plus statistics and
catalog quality checks.

The catalog is a JSON snapshot document, passed with --catalog or
configured once via "restomenu config set catalog.path <file>".`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to the catalog snapshot document")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "narrate how queries are resolved")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureConfigStore wires the TOML config store on first use.
func ensureConfigStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}
	configStore = store
	return configStore, nil
}

// ensureMenuService wires the menu service against the configured
// catalog document on first use. The --catalog flag wins over the
// config file's catalog.path.
func ensureMenuService() (driving.MenuService, error) {
	if menuService != nil {
		return menuService, nil
	}

	path := catalogPath
	if path == "" {
		store, err := ensureConfigStore()
		if err != nil {
			return nil, err
		}
		path = store.GetString(configfile.KeyCatalogPath)
	}
	if path == "" {
		return nil, errors.New("no catalog configured: pass --catalog or set catalog.path via \"restomenu config set\"")
	}

	source, err := catalogfile.NewSource(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	menuService = services.NewMenuService(source)
	return menuService, nil
}
