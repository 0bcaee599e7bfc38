package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by choque.

Datasets fall back to their built-in sheets afterwards. If no configuration
file is active, the command returns an error.`,
	Example: `
  # Delete active config
  choque config delete

  # Delete config at a custom path
  choque --configFile ./custom-choque.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return fmt.Errorf("no configuration file found")
		}

		// An unreadable file is still deleted; only the listing is skipped.
		if cfg, err := validateConfigFile(configPath); err == nil {
			for _, line := range describeOverrides(cfg) {
				fmt.Printf("Dropping override %s\n", line)
			}
		}

		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("error deleting configuration file: %w", err)
		}

		fmt.Printf("Configuration file successfully deleted: %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
