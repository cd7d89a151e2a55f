package vita

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/store"
)

const configKeyUSDAAPIKey = "usda_api_key"

var configKeys = []string{configKeyUSDAAPIKey}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(strings.TrimSpace(args[0]))
		if !validConfigKey(key) {
			return fmt.Errorf("unknown config key %q (known: %s)", args[0], strings.Join(configKeys, ", "))
		}
		return withStore(func(s *store.Store) error {
			cfg := map[string]string{}
			if _, err := s.Get(store.KeyAppConfig, &cfg); err != nil {
				return err
			}
			cfg[key] = args[1]
			if err := s.Put(store.KeyAppConfig, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(strings.TrimSpace(args[0]))
		if !validConfigKey(key) {
			return fmt.Errorf("unknown config key %q (known: %s)", args[0], strings.Join(configKeys, ", "))
		}
		return withStore(func(s *store.Store) error {
			cfg := map[string]string{}
			if _, err := s.Get(store.KeyAppConfig, &cfg); err != nil {
				return err
			}
			value, ok := cfg[key]
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not set\n", key)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

func validConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)
}
