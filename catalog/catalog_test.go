package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"choque/dataset"
	"choque/listing"
	"choque/search"
)

type funcFetcher func(ctx context.Context, rawURL string) (string, error)

func (f funcFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	return f(ctx, rawURL)
}

func bodiesFetcher(bodies map[string]string) funcFetcher {
	return func(_ context.Context, rawURL string) (string, error) {
		body, ok := bodies[rawURL]
		if !ok {
			return "", errors.New("sheet unavailable")
		}
		return body, nil
	}
}

func marketStore(t *testing.T, fetcher funcFetcher, urls ...string) *Store {
	t.Helper()
	ds, ok := dataset.ByKind(listing.KindMarket)
	if !ok {
		t.Fatalf("missing market dataset")
	}
	return NewStore(ds, Config{
		Fetcher: fetcher,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sources: map[listing.Kind][]string{listing.KindMarket: urls},
		Now:     func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) },
	})
}

func ids(records []listing.Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID)
	}
	return out
}

func TestRefresh_MergesSourcesNewestFirstAndSorted(t *testing.T) {
	t.Parallel()

	store := marketStore(t, bodiesFetcher(map[string]string{
		"https://sheets.example.com/a": "ten_san_pham,gia_tien,xac_minh\nA,100,x\nB,200,\n",
		"https://sheets.example.com/b": "Tên sản phẩm\nC\n",
	}), "https://sheets.example.com/a", "https://sheets.example.com/b")

	snapshot, err := store.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	got := ids(snapshot.Records)
	want := []string{"market-1", "market-3", "market-2"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if snapshot.Sources != 2 || snapshot.SourcesFailed != 0 {
		t.Fatalf("unexpected source counters: %+v", snapshot)
	}
	if !snapshot.FetchedAt.Equal(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected fetch time: %s", snapshot.FetchedAt)
	}
	if store.Snapshot() != snapshot {
		t.Fatalf("expected refreshed snapshot to be published")
	}
}

func TestRefresh_PartialFailureKeepsOtherSources(t *testing.T) {
	t.Parallel()

	store := marketStore(t, bodiesFetcher(map[string]string{
		"https://sheets.example.com/a": "ten_san_pham\nA\n",
	}), "https://sheets.example.com/a", "https://sheets.example.com/missing")

	snapshot, err := store.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if snapshot.SourcesFailed != 1 || len(snapshot.Records) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}

func TestRefresh_AllSourcesFailedIsUpdating(t *testing.T) {
	t.Parallel()

	store := marketStore(t, bodiesFetcher(nil), "https://sheets.example.com/missing")

	snapshot, err := store.Refresh(context.Background())
	if !errors.Is(err, ErrUpdating) {
		t.Fatalf("expected ErrUpdating, got %v", err)
	}
	if snapshot == nil || len(snapshot.Records) != 0 || !errors.Is(snapshot.Err, ErrUpdating) {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}

	if _, err := store.Listings(context.Background(), search.Criteria{}); !errors.Is(err, ErrUpdating) {
		t.Fatalf("expected listings to report updating, got %v", err)
	}
}

func TestEnsure_LoadsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	store := marketStore(t, func(_ context.Context, _ string) (string, error) {
		calls.Add(1)
		return "ten_san_pham\nA\n", nil
	}, "https://sheets.example.com/a")

	if store.Snapshot() != nil {
		t.Fatalf("expected no snapshot before first use")
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Ensure(context.Background()); err != nil {
				t.Errorf("Ensure returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected one fetch, got %d", calls.Load())
	}
}

func TestEnsure_SharedLoadSurvivesCancelledCaller(t *testing.T) {
	t.Parallel()

	store := marketStore(t, func(ctx context.Context, _ string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "ten_san_pham\nA\nB\n", nil
	}, "https://sheets.example.com/a")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	snapshot, err := store.Ensure(cancelled)
	if err != nil {
		t.Fatalf("expected load to ignore caller cancellation, got %v", err)
	}
	if len(snapshot.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(snapshot.Records))
	}

	snapshot, err = store.Ensure(context.Background())
	if err != nil || len(snapshot.Records) != 2 {
		t.Fatalf("expected published snapshot, got %+v (%v)", snapshot, err)
	}
}

func TestEnsure_RetriesAfterUpdating(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	store := marketStore(t, func(_ context.Context, _ string) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("sheet unavailable")
		}
		return "ten_san_pham\nA\n", nil
	}, "https://sheets.example.com/a")

	if _, err := store.Ensure(context.Background()); !errors.Is(err, ErrUpdating) {
		t.Fatalf("expected first load to be updating, got %v", err)
	}

	snapshot, err := store.Ensure(context.Background())
	if err != nil {
		t.Fatalf("expected second Ensure to fetch again, got %v", err)
	}
	if len(snapshot.Records) != 1 || calls.Load() != 2 {
		t.Fatalf("unexpected reload: records=%d fetches=%d", len(snapshot.Records), calls.Load())
	}

	if _, err := store.Ensure(context.Background()); err != nil || calls.Load() != 2 {
		t.Fatalf("expected loaded snapshot to be reused, fetches=%d err=%v", calls.Load(), err)
	}
}

func TestRefresh_DropsStaleCycle(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	store := marketStore(t, func(_ context.Context, _ string) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return "ten_san_pham\nCũ\n", nil
		}
		return "ten_san_pham\nMới\n", nil
	}, "https://sheets.example.com/a")

	slow := make(chan *Snapshot, 1)
	go func() {
		snapshot, _ := store.Refresh(context.Background())
		slow <- snapshot
	}()
	<-started

	fresh, err := store.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	close(release)
	stale := <-slow

	if stale != fresh || store.Snapshot() != fresh {
		t.Fatalf("expected stale cycle to be dropped")
	}
	if fresh.Records[0].Title != "Mới" {
		t.Fatalf("unexpected published title: %q", fresh.Records[0].Title)
	}
}

func TestStore_ListingsAppliesCriteria(t *testing.T) {
	t.Parallel()

	store := marketStore(t, bodiesFetcher(map[string]string{
		"https://sheets.example.com/a": "ten_san_pham,danh_muc,gia_tien,tinh_trang\n" +
			"Tủ lạnh Sanyo,Tủ lạnh,2500000,\n" +
			"Điện thoại cũ,Điện thoại,900000,Đã bán\n" +
			"Quạt đứng,Quạt,,\n",
	}), "https://sheets.example.com/a")

	records, err := store.Listings(context.Background(), search.Criteria{Category: "appliances"})
	if err != nil {
		t.Fatalf("Listings returned error: %v", err)
	}
	if got := ids(records); len(got) != 2 || got[0] != "market-3" || got[1] != "market-1" {
		t.Fatalf("unexpected appliances: %v", got)
	}

	records, err = store.Listings(context.Background(), search.Criteria{Query: "dien thoai"})
	if err != nil {
		t.Fatalf("Listings returned error: %v", err)
	}
	if len(records) != 1 || records[0].Status != listing.StatusSold {
		t.Fatalf("unexpected search result: %+v", records)
	}
}

func TestCatalog_StoresAndRefreshAll(t *testing.T) {
	t.Parallel()

	fetcher := bodiesFetcher(map[string]string{"https://sheets.example.com/food": "tên món\nRau muống\n"})
	c := New(dataset.All(), Config{
		Fetcher: fetcher,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sources: map[listing.Kind][]string{listing.KindFood: {"https://sheets.example.com/food"}},
	})

	if len(c.Kinds()) != len(listing.Kinds()) {
		t.Fatalf("unexpected kinds: %v", c.Kinds())
	}
	if _, err := c.Store(listing.Kind("boats")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	failed := c.RefreshAll(context.Background())
	if _, ok := failed[listing.KindFood]; ok {
		t.Fatalf("food refresh should succeed: %v", failed[listing.KindFood])
	}
	if len(failed) != len(listing.Kinds())-1 {
		t.Fatalf("expected every other dataset to fail, got %v", failed)
	}

	food, err := c.Store(listing.KindFood)
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if snapshot := food.Snapshot(); snapshot == nil || len(snapshot.Records) != 1 {
		t.Fatalf("unexpected food snapshot: %+v", snapshot)
	}
}
