package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"choque/catalog"
	"choque/dataset"
	"choque/importer"
	"choque/listing"
	"choque/output"
	"choque/search"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	fetchDataset     string
	fetchInputs      []string
	fetchInputFormat string
	fetchCategory    string
	fetchQuery       string
	fetchPrice       string
	fetchLimit       int
)

const titleWidth = 40

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch listing sheets and print the normalized, searchable result",
	Long: `Fetch the published sheets of one or all datasets, normalize every row,
and print the listings in display order together with a per-category summary.

With --input the sheets are read from local CSV/Excel exports instead and no
network access is needed. Local input requires a single --dataset.

Filters:
- --category: category id (see "choque serve" /api/datasets) or "all"
- --query: accent-insensitive text search
- --price: price bracket id of the dataset, e.g. 100k-500k`,
	Example: `
  # Fetch every dataset
  choque fetch

  # Available jobs under 10 million per month
  choque fetch --dataset jobs --price 5m-10m

  # Search vehicles for a brand, accents optional
  choque fetch --dataset vehicles --query honda --limit 50

  # Normalize two local exports of the market sheet
  choque fetch --dataset market --input ./cho-1.csv --input ./cho-2.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		datasets, err := selectDatasets(fetchDataset)
		if err != nil {
			return err
		}
		criteria := search.Criteria{
			Category: fetchCategory,
			Query:    fetchQuery,
			Bracket:  fetchPrice,
		}
		out := cmd.OutOrStdout()

		if len(fetchInputs) > 0 {
			if len(datasets) != 1 {
				return fmt.Errorf("--input requires --dataset to name one dataset (%s)", kindList())
			}
			ds := datasets[0]
			result, err := importer.Run(fetchInputs, fetchInputFormat, ds.Schema)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Import completed. Files: %d, Rows: %d, Records: %d\n", result.FilesProcessed, result.RowsRead, len(result.Records))
			printListings(out, ds, catalog.Arrange(result.Records), criteria, fetchLimit)
			return nil
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		failed := refreshDatasets(ctx, a.catalog, datasets)
		for _, ds := range datasets {
			store, err := a.catalog.Store(ds.Kind)
			if err != nil {
				return err
			}
			snapshot := store.Snapshot()
			if snapshot == nil {
				fmt.Fprintf(out, "\n%s (%s): not fetched\n", ds.Label, ds.Kind)
				continue
			}
			if snapshot.Err != nil {
				fmt.Fprintf(out, "\n%s (%s): updating, %d of %d sources failed\n", ds.Label, ds.Kind, snapshot.SourcesFailed, snapshot.Sources)
				continue
			}
			if snapshot.SourcesFailed > 0 {
				fmt.Fprintf(out, "\nWarning: %s: %d of %d sources failed\n", ds.Kind, snapshot.SourcesFailed, snapshot.Sources)
			}
			printListings(out, ds, snapshot.Records, criteria, fetchLimit)
		}

		if len(failed) == len(datasets) {
			return errors.Join(orderedErrors(failed)...)
		}
		return nil
	},
}

// refreshDatasets runs one fetch cycle for each selected dataset and returns
// the failures by kind.
func refreshDatasets(ctx context.Context, c *catalog.Catalog, datasets []dataset.Dataset) map[listing.Kind]error {
	if len(datasets) == len(c.Kinds()) {
		return c.RefreshAll(ctx)
	}

	failed := make(map[listing.Kind]error)
	for _, ds := range datasets {
		store, err := c.Store(ds.Kind)
		if err != nil {
			failed[ds.Kind] = err
			continue
		}
		if _, err := store.Refresh(ctx); err != nil {
			failed[ds.Kind] = err
		}
	}
	return failed
}

func orderedErrors(failed map[listing.Kind]error) []error {
	errs := make([]error, 0, len(failed))
	for _, kind := range listing.Kinds() {
		if err, ok := failed[kind]; ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// printListings filters records and prints them as a table followed by the
// category summary of the matches. records must already be in display order.
func printListings(w io.Writer, ds dataset.Dataset, records []listing.Record, criteria search.Criteria, limit int) {
	matched := search.Filter(records, criteria, ds.Search)

	fmt.Fprintf(w, "\n%s (%s): %s listings, %s matching\n", ds.Label, ds.Kind,
		humanize.Comma(int64(len(records))), humanize.Comma(int64(len(matched))))
	if len(matched) == 0 {
		fmt.Fprintln(w, "No listings match the current filters.")
		return
	}

	shown := matched
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tCATEGORY\tSTATUS\tLOCATION\tPHONE")
	for _, record := range shown {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			record.ID,
			truncate(record.Title, titleWidth),
			record.PriceText,
			record.CategoryLabel,
			statusMarker(record),
			record.Location,
			record.Phone,
		)
	}
	_ = tw.Flush()
	if hidden := len(matched) - len(shown); hidden > 0 {
		fmt.Fprintf(w, "... and %d more (raise --limit to show them)\n", hidden)
	}

	fmt.Fprintln(w, "Categories:")
	for _, summary := range output.BuildCategorySummaries(matched) {
		fmt.Fprintf(w, "  %s: %d listings, %d available, %d verified\n",
			summary.Label, summary.Count, summary.Available, summary.Verified)
	}
}

func statusMarker(record listing.Record) string {
	marker := string(record.Status)
	if record.Verified {
		marker += " ✓"
	}
	if record.Featured {
		marker += " ★"
	}
	return marker
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return strings.TrimSpace(string(runes[:width-1])) + "…"
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchDataset, "dataset", "all", "Dataset to fetch: all|"+strings.ReplaceAll(kindList(), ", ", "|"))
	fetchCmd.Flags().StringArrayVar(&fetchInputs, "input", nil, "Local CSV/Excel export to read instead of fetching (repeatable)")
	fetchCmd.Flags().StringVar(&fetchInputFormat, "input-format", "", "Input format: csv|excel (optional, inferred from extension)")
	fetchCmd.Flags().StringVar(&fetchCategory, "category", "", "Category id filter")
	fetchCmd.Flags().StringVarP(&fetchQuery, "query", "q", "", "Text search, accents optional")
	fetchCmd.Flags().StringVar(&fetchPrice, "price", "", "Price bracket id filter")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 20, "Maximum listings printed per dataset (0 prints all)")
}
