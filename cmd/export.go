package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"choque/catalog"
	"choque/dataset"
	"choque/importer"
	"choque/listing"
	"choque/output"
	"choque/search"

	"github.com/spf13/cobra"
)

var (
	exportDataset     string
	exportInputs      []string
	exportInputFormat string
	exportFormat      string
	exportMode        string
	exportOutput      string
	exportCategory    string
	exportQuery       string
	exportPrice       string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export normalized listings to CSV/Excel/SQLite",
	Long: `Export the normalized listings of one dataset.

The listings come from a fresh fetch of the dataset sheets, or from local
CSV/Excel exports given with --input. Filters apply before writing and rows
keep display order.

Modes:
- raw: export each normalized listing (csv, excel, sqlite)
- summary: export per-category counts and price ranges (csv, excel)

Output format can be selected explicitly via --format or inferred from --output extension.
SQLite output replaces an existing file.`,
	Example: `
  # Export the market board to CSV
  choque export --dataset market --output ./cho.csv

  # Export real estate to Excel
  choque export --dataset realestate --output ./nha-dat.xlsx

  # Export available jobs into a SQLite database
  choque export --dataset jobs --output ./viec-lam.db

  # Export the category summary of a local food sheet
  choque export --dataset food --input ./thuc-pham.csv --mode summary --output ./food-summary.csv

  # Force Excel format independent of extension
  choque export --dataset vehicles --format excel --output ./xe.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := selectDataset(exportDataset)
		if err != nil {
			return err
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		records, err := loadExportRecords(cmd, ds)
		if err != nil {
			return err
		}
		records = search.Filter(records, search.Criteria{
			Category: exportCategory,
			Query:    exportQuery,
			Bracket:  exportPrice,
		}, ds.Search)

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, records); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Dataset: %s, Mode: raw, Format: %s, File: %s\n", len(records), ds.Kind, format, exportOutput)
		case "summary":
			summaries := output.BuildCategorySummaries(records)
			if err := output.WriteCategorySummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Categories: %d, Dataset: %s, Mode: summary, Format: %s, File: %s\n", len(summaries), ds.Kind, format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, summary)", exportMode)
		}
		return nil
	},
}

func loadExportRecords(cmd *cobra.Command, ds dataset.Dataset) ([]listing.Record, error) {
	if len(exportInputs) > 0 {
		result, err := importer.Run(exportInputs, exportInputFormat, ds.Schema)
		if err != nil {
			return nil, err
		}
		return catalog.Arrange(result.Records), nil
	}

	a, err := loadApp()
	if err != nil {
		return nil, err
	}
	store, err := a.catalog.Store(ds.Kind)
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshot, err := store.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.SourcesFailed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d of %d sources failed, exporting partial data\n", snapshot.SourcesFailed, snapshot.Sources)
	}
	return snapshot.Records, nil
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm":
		return "excel"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDataset, "dataset", "", "Dataset to export: "+strings.ReplaceAll(kindList(), ", ", "|"))
	exportCmd.Flags().StringArrayVar(&exportInputs, "input", nil, "Local CSV/Excel export to read instead of fetching (repeatable)")
	exportCmd.Flags().StringVar(&exportInputFormat, "input-format", "", "Input format: csv|excel (optional, inferred from extension)")
	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|summary")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel|sqlite (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Category id filter")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "Text search, accents optional")
	exportCmd.Flags().StringVar(&exportPrice, "price", "", "Price bracket id filter")

	_ = exportCmd.MarkFlagRequired("dataset")
	_ = exportCmd.MarkFlagRequired("output")
}
