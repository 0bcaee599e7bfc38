package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"choque/listing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyHTTPTimeout   = "http.timeout"
	KeyHTTPUserAgent = "http.user_agent"
	KeyHTTPMaxBytes  = "http.max_bytes"
	KeyServePort     = "serve.port"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyDatasets      = "datasets"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "choque/1.0 (+listing sync)"
	defaultMaxBytes  = 8 << 20
	defaultPort      = 8080
)

type Config struct {
	HTTP     HTTPConfig               `mapstructure:"http"`
	Serve    ServeConfig              `mapstructure:"serve"`
	Log      LogConfig                `mapstructure:"log"`
	Datasets map[string]DatasetConfig `mapstructure:"datasets" validate:"dive"`
}

type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent"`
	MaxBytes  int64         `mapstructure:"max_bytes" validate:"gt=0"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=tint text json"`
}

// DatasetConfig replaces the compiled-in source URLs of one dataset.
type DatasetConfig struct {
	Sources []string `mapstructure:"sources" validate:"dive,url"`
}

// SourceOverrides returns the configured source URLs per dataset kind.
func (c Config) SourceOverrides() map[listing.Kind][]string {
	overrides := make(map[listing.Kind][]string, len(c.Datasets))
	for name, ds := range c.Datasets {
		kind, err := listing.ParseKind(name)
		if err != nil || len(ds.Sources) == 0 {
			continue
		}
		overrides[kind] = ds.Sources
	}
	return overrides
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# choque configuration
http:
  timeout: 30s
  user_agent: "choque/1.0 (+listing sync)"
  max_bytes: 8388608

serve:
  port: 8080

log:
  level: info   # debug | info | warn | error
  format: tint  # tint | text | json

# Published spreadsheet tabs per dataset. Datasets left out use the
# built-in sheets.
datasets: {}
#  food:
#    sources:
#      - "https://docs.google.com/spreadsheets/d/e/<sheet>/pub?gid=0&single=true&output=csv"
#  market:
#    sources:
#      - "https://docs.google.com/spreadsheets/d/e/<sheet>/pub?gid=4&single=true&output=csv"
#      - "https://docs.google.com/spreadsheets/d/e/<sheet>/pub?gid=7&single=true&output=csv"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateDatasets(cfg.Datasets); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyHTTPTimeout, defaultTimeout)
	v.SetDefault(KeyHTTPUserAgent, defaultUserAgent)
	v.SetDefault(KeyHTTPMaxBytes, defaultMaxBytes)
	v.SetDefault(KeyServePort, defaultPort)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "tint")
	v.SetDefault(KeyDatasets, map[string]any{})
}

func validateDatasets(datasets map[string]DatasetConfig) error {
	for name := range datasets {
		if _, err := listing.ParseKind(name); err != nil {
			return fmt.Errorf("validation failed: datasets.%s: %w", name, err)
		}
	}
	return nil
}
