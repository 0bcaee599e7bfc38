package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active choque config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

If no config file exists yet, this command creates one with an example template first.
After the editor exits, the content is validated and the dataset sheet
overrides are listed.`,
	Example: `
  # Edit active config
  choque config edit

  # Edit a project-local config with a specific editor
  EDITOR="code --wait" choque --configFile ./.choque.yaml config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := writeConfigTemplate(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("No config file found. Created example config at: %s\n", configPath)
		}

		editor := editorCommand(os.Getenv("VISUAL"), os.Getenv("EDITOR"), configPath)
		editor.Stdin = os.Stdin
		editor.Stdout = os.Stdout
		editor.Stderr = os.Stderr
		if err := editor.Run(); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		cfg, err := validateConfigFile(configPath)
		if err != nil {
			return err
		}

		fmt.Printf("Configuration saved and validated: %s\n", configPath)
		for _, line := range describeOverrides(cfg) {
			fmt.Printf("  override %s\n", line)
		}
		return nil
	},
}

// editorCommand builds the editor invocation for path. $VISUAL wins over
// $EDITOR; both may carry arguments such as "code --wait".
func editorCommand(visual, editor, path string) *exec.Cmd {
	value := "vi"
	switch {
	case strings.TrimSpace(visual) != "":
		value = visual
	case strings.TrimSpace(editor) != "":
		value = editor
	}

	fields := strings.Fields(value)
	return exec.Command(fields[0], append(fields[1:], path)...)
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
