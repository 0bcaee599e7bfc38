package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file from the example template.",
	Long: `Create a new configuration file from the same example template used by "config edit".

If the configuration file already exists it is left untouched and only validated.`,
	Example: `
  # Create default config at $HOME/.choque.yaml
  choque config create

  # Create a project-local config
  choque --configFile ./.choque.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig(cmd.OutOrStdout())
	},
}

func saveDefaultConfig(w io.Writer) error {
	configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := writeConfigTemplate(configPath)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(w, "New config file created at: %s\n", configPath)
		return nil
	}

	fmt.Fprintf(w, "Config file already exists at: %s\n", configPath)
	cfg, err := validateConfigFile(configPath)
	if err != nil {
		return err
	}
	for _, line := range describeOverrides(cfg) {
		fmt.Fprintf(w, "  override %s\n", line)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
