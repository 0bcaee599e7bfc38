package cmd

import (
	"fmt"
	"github.com/spf13/viper"

	"choque/config"
	"choque/dataset"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Datasets
without an override are listed with their built-in sheet URLs.`,
	Example: `
  # Show active configuration
  choque config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("Config file loaded from: (defaults)")
		}
		fmt.Println("Configuration:")
		fmt.Printf("http.timeout: %s\n", cfg.HTTP.Timeout)
		fmt.Printf("http.user_agent: %s\n", cfg.HTTP.UserAgent)
		fmt.Printf("http.max_bytes: %d\n", cfg.HTTP.MaxBytes)
		fmt.Printf("serve.port: %d\n", cfg.Serve.Port)
		fmt.Printf("log.level: %s\n", cfg.Log.Level)
		fmt.Printf("log.format: %s\n", cfg.Log.Format)

		overrides := cfg.SourceOverrides()
		for _, ds := range dataset.All() {
			sources, overridden := overrides[ds.Kind]
			origin := "built-in"
			if !overridden {
				sources = ds.Sources
			} else {
				origin = "override"
			}
			for i, src := range sources {
				fmt.Printf("datasets.%s.sources[%d] (%s): %s\n", ds.Kind, i, origin, src)
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
