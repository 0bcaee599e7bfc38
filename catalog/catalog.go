// Package catalog holds the current listing snapshot of every dataset and
// runs the fetch cycles that replace them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"choque/dataset"
	"choque/importer"
	"choque/listing"
	"choque/search"
	"choque/source"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUpdating marks a dataset whose last fetch cycle produced nothing.
	ErrUpdating    = errors.New("dataset is updating")
	ErrUnknownKind = errors.New("unknown dataset")
)

// Snapshot is the immutable result of one fetch cycle.
type Snapshot struct {
	Kind          listing.Kind
	Records       []listing.Record
	FetchedAt     time.Time
	Err           error
	Sources       int
	SourcesFailed int
}

// Find returns the record with the given id.
func (s *Snapshot) Find(id string) (listing.Record, bool) {
	for _, record := range s.Records {
		if record.ID == id {
			return record, true
		}
	}
	return listing.Record{}, false
}

type Config struct {
	Fetcher source.Fetcher
	Logger  *slog.Logger
	// Sources replaces the compiled-in URLs of the listed kinds.
	Sources map[listing.Kind][]string
	Now     func() time.Time
}

// Store owns the published snapshot of one dataset.
type Store struct {
	dataset dataset.Dataset
	sources []string
	fetcher source.Fetcher
	logger  *slog.Logger
	now     func() time.Time

	snapshot   atomic.Pointer[Snapshot]
	generation atomic.Uint64
	loads      singleflight.Group

	mu        sync.Mutex
	published uint64
}

func NewStore(ds dataset.Dataset, cfg Config) *Store {
	sources := ds.Sources
	if override, ok := cfg.Sources[ds.Kind]; ok && len(override) > 0 {
		sources = override
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = source.NewClient(source.ClientConfig{})
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		dataset: ds,
		sources: slices.Clone(sources),
		fetcher: fetcher,
		logger:  logger.With("dataset", string(ds.Kind)),
		now:     now,
	}
}

func (s *Store) Dataset() dataset.Dataset {
	return s.dataset
}

func (s *Store) Sources() []string {
	return slices.Clone(s.sources)
}

// Snapshot returns the published snapshot, or nil before the first load.
func (s *Store) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Ensure loads the dataset on first use and retries while the published
// snapshot is updating. Concurrent callers share one fetch cycle, which is not
// cancelled when a single caller goes away.
func (s *Store) Ensure(ctx context.Context) (*Snapshot, error) {
	if current := s.snapshot.Load(); current != nil && current.Err == nil {
		return current, nil
	}

	_, _, _ = s.loads.Do("load", func() (any, error) {
		if current := s.snapshot.Load(); current != nil && current.Err == nil {
			return nil, nil
		}
		_, err := s.Refresh(context.WithoutCancel(ctx))
		return nil, err
	})

	current := s.snapshot.Load()
	if current == nil {
		return nil, fmt.Errorf("%s: %w", s.dataset.Kind, ErrUpdating)
	}
	return current, current.Err
}

// Refresh runs one fetch cycle and publishes its snapshot, unless a newer
// cycle has already published. It returns the snapshot now visible.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	generation := s.generation.Add(1)
	started := s.now()

	results := source.FetchAll(ctx, s.fetcher, s.sources)
	next := s.assemble(results)
	next.FetchedAt = started

	current := s.publish(generation, next)
	return current, current.Err
}

func (s *Store) assemble(results []source.Result) *Snapshot {
	snapshot := &Snapshot{
		Kind:          s.dataset.Kind,
		Sources:       len(results),
		SourcesFailed: source.Failed(results),
	}

	var records []listing.Record
	for _, result := range results {
		if result.Err != nil {
			s.logger.Warn("source fetch failed", "url", result.URL, "error", result.Err)
			continue
		}
		table := importer.ParseRecords(result.Body)
		records = append(records, importer.Ingest(s.dataset.Schema, table, len(records))...)
	}

	if snapshot.SourcesFailed == len(results) {
		snapshot.Err = fmt.Errorf("%s: %w", s.dataset.Kind, ErrUpdating)
		return snapshot
	}
	if snapshot.SourcesFailed > 0 {
		s.logger.Warn("partial fetch", "failed", snapshot.SourcesFailed, "sources", len(results))
	}

	snapshot.Records = Arrange(records)
	return snapshot
}

// Arrange orders assembled records for display: newest first, then by
// priority. Sheets append new rows at the bottom.
func Arrange(records []listing.Record) []listing.Record {
	reversed := slices.Clone(records)
	slices.Reverse(reversed)
	return search.Sort(reversed)
}

func (s *Store) publish(generation uint64, next *Snapshot) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation < s.published {
		s.logger.Debug("dropping stale fetch result", "generation", generation, "published", s.published)
		return s.snapshot.Load()
	}
	s.published = generation
	s.snapshot.Store(next)
	s.logger.Info("snapshot published", "records", len(next.Records), "failed", next.SourcesFailed)
	return next
}

// Listings loads the dataset if needed and applies criteria to the snapshot.
// Snapshots are kept priority-sorted, so the result is too.
func (s *Store) Listings(ctx context.Context, criteria search.Criteria) ([]listing.Record, error) {
	snapshot, err := s.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(snapshot.Records, criteria, s.dataset.Search), nil
}

// Catalog groups the stores of every dataset.
type Catalog struct {
	order  []listing.Kind
	stores map[listing.Kind]*Store
}

func New(datasets []dataset.Dataset, cfg Config) *Catalog {
	c := &Catalog{stores: make(map[listing.Kind]*Store, len(datasets))}
	for _, ds := range datasets {
		if _, exists := c.stores[ds.Kind]; exists {
			continue
		}
		c.order = append(c.order, ds.Kind)
		c.stores[ds.Kind] = NewStore(ds, cfg)
	}
	return c
}

func (c *Catalog) Kinds() []listing.Kind {
	return slices.Clone(c.order)
}

func (c *Catalog) Store(kind listing.Kind) (*Store, error) {
	store, ok := c.stores[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return store, nil
}

// RefreshAll runs one cycle for every dataset concurrently. Failed datasets
// keep their updating snapshot; the returned map holds their errors.
func (c *Catalog) RefreshAll(ctx context.Context) map[listing.Kind]error {
	errs := make([]error, len(c.order))

	var group errgroup.Group
	for i, kind := range c.order {
		store := c.stores[kind]
		group.Go(func() error {
			_, errs[i] = store.Refresh(ctx)
			return nil
		})
	}
	_ = group.Wait()

	failed := make(map[listing.Kind]error)
	for i, err := range errs {
		if err != nil {
			failed[c.order[i]] = err
		}
	}
	return failed
}
