package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"choque/config"
)

const defaultConfigName = ".choque.yaml"

// resolveConfigPath picks the --configFile flag, then the file viper loaded,
// then $HOME/.choque.yaml.
func resolveConfigPath(configFileFlag, configFileUsed string) (string, error) {
	if strings.TrimSpace(configFileFlag) != "" {
		return configFileFlag, nil
	}
	if strings.TrimSpace(configFileUsed) != "" {
		return configFileUsed, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigName), nil
}

// writeConfigTemplate creates path from the example template unless it
// already exists. It reports whether a file was written.
func writeConfigTemplate(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("creating example config failed: %w", err)
	}
	return true, nil
}

func validateConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config failed: %w", err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

// describeOverrides lists the datasets whose sheets come from the config,
// sorted by kind.
func describeOverrides(cfg *config.Config) []string {
	overrides := cfg.SourceOverrides()
	lines := make([]string, 0, len(overrides))
	for kind, sources := range overrides {
		lines = append(lines, fmt.Sprintf("%s: %d source(s)", kind, len(sources)))
	}
	sort.Strings(lines)
	return lines
}
