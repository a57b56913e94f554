package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/8ui/restomenu-core-sub000/internal/adapters/driven/config/file"
	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// wellKnownKeys drives "config show" and the value checks on "config set".
var wellKnownKeys = []string{
	configfile.KeyCatalogPath,
	configfile.KeyDefaultSort,
	configfile.KeyDefaultOrder,
	configfile.KeyDefaultOutlet,
	configfile.KeyDefaultChannel,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage restomenu configuration",
	Long: `View and change persistent configuration.

Settings live in a TOML file and supply defaults for queries: the
catalog document to load, the default sort strategy and order, and the
default outlet or channel scope.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it.

Known keys:
  catalog.path          catalog snapshot document to load by default
  menu.default_sort     sort strategy (name, price, popularity, categoryPriority)
  menu.default_order    sort direction (asc, desc)
  menu.default_outlet   outlet id applied to every query
  menu.default_channel  fulfillment channel (delivery, pickup, inside)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := ensureConfigStore()
	if err != nil {
		return err
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	for _, key := range wellKnownKeys {
		val, ok := store.Get(key)
		if !ok {
			cmd.Printf("  %s: (not set)\n", key)
			continue
		}
		cmd.Printf("  %s: %v\n", key, val)
	}
	cmd.Println()
	cmd.Printf("Config file: %s\n", store.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := ensureConfigStore()
	if err != nil {
		return err
	}

	val, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: key %q is not set", domain.ErrNotFound, args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := ensureConfigStore()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := checkConfigValue(key, value); err != nil {
		return err
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("persist config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := ensureConfigStore()
	if err != nil {
		return err
	}
	cmd.Println(store.Path())
	return nil
}

// checkConfigValue rejects values that would break later queries for
// keys whose domain is closed. Free-form keys pass through.
func checkConfigValue(key, value string) error {
	switch key {
	case configfile.KeyDefaultSort:
		_, err := domain.ParseSortStrategy(value)
		return err
	case configfile.KeyDefaultOrder:
		_, err := domain.ParseSortOrder(value)
		return err
	case configfile.KeyDefaultChannel:
		_, err := domain.ParseChannel(value)
		return err
	default:
		return nil
	}
}
