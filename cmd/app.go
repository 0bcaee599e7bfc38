package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"choque/catalog"
	"choque/config"
	"choque/dataset"
	"choque/internal/logging"
	"choque/listing"
	"choque/source"
)

// app bundles what every networked command needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
}

func loadApp() (*app, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: os.Stderr,
	})
	if err != nil {
		return nil, err
	}

	client := source.NewClient(source.ClientConfig{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.HTTP.Timeout,
		MaxBytes:  cfg.HTTP.MaxBytes,
	})

	return &app{
		cfg:    cfg,
		logger: logger,
		catalog: catalog.New(dataset.All(), catalog.Config{
			Fetcher: client,
			Logger:  logger,
			Sources: cfg.SourceOverrides(),
		}),
	}, nil
}

// selectDatasets resolves a --dataset value. "all" and the empty string
// select every dataset.
func selectDatasets(value string) ([]dataset.Dataset, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return dataset.All(), nil
	}

	kind, err := listing.ParseKind(value)
	if err != nil {
		return nil, err
	}
	ds, ok := dataset.ByKind(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownKind, value)
	}
	return []dataset.Dataset{ds}, nil
}

// selectDataset is selectDatasets for commands that work on exactly one.
func selectDataset(value string) (dataset.Dataset, error) {
	if strings.TrimSpace(value) == "" || strings.EqualFold(strings.TrimSpace(value), "all") {
		return dataset.Dataset{}, fmt.Errorf("--dataset must name one dataset (%s)", kindList())
	}
	selected, err := selectDatasets(value)
	if err != nil {
		return dataset.Dataset{}, err
	}
	return selected[0], nil
}

func kindList() string {
	kinds := listing.Kinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return strings.Join(names, ", ")
}
