package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage choque configuration file values.",
	Long: `Create, edit, display, and delete the choque configuration file.

The configuration stores application-wide values and sheet overrides:
- http.timeout / http.user_agent / http.max_bytes
- serve.port
- log.level / log.format
- datasets.<kind>.sources[]`,
	Example: `
  # Create default config in $HOME/.choque.yaml
  choque config create

  # Show active config and source file
  choque config show

  # Open active config in editor (creates example if missing)
  choque config edit

  # Delete active config file
  choque config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
