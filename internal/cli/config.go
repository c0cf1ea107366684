package cli

import (
	"fmt"
	"strconv"

	"github.com/mfe-labs/create-mfe/internal/branding"
	"github.com/mfe-labs/create-mfe/internal/config"
	"github.com/mfe-labs/create-mfe/internal/pkgmgr"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write settings stored at %s.

Keys:
  %-16s package manager used to bootstrap package.json (npm, pnpm, yarn)
  %-16s disable colored output (true, false)

Environment variables %s and %s override the file.`,
		config.FilePath(), config.KeyPackageManager, config.KeyNoColor,
		branding.EnvVar(config.KeyPackageManager), branding.EnvVar(config.KeyNoColor)),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := validateSetting(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func validateSetting(key, value string) error {
	switch key {
	case config.KeyPackageManager:
		switch value {
		case pkgmgr.NPM, pkgmgr.PNPM, pkgmgr.Yarn:
			return nil
		}
		return fmt.Errorf("unsupported package manager %q (want npm, pnpm or yarn)", value)
	case config.KeyNoColor:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid value %q for %s: want true or false", value, key)
		}
		return nil
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}
