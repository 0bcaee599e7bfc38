// Package web serves catalog snapshots as a read-only JSON API.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"choque/catalog"
	"choque/dataset"
	"choque/listing"
	"choque/search"
)

type Server struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	mux     *http.ServeMux
}

func NewServer(c *catalog.Catalog, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	server := &Server{catalog: c, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", server.handleHealth)
	mux.HandleFunc("GET /api/datasets", server.handleDatasets)
	mux.HandleFunc("GET /api/listings/{kind}", server.handleListings)
	mux.HandleFunc("GET /api/listings/{kind}/{id}", server.handleListing)
	server.mux = mux

	return requestLogger(logger)(server)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type datasetView struct {
	Kind       listing.Kind       `json:"kind"`
	Label      string             `json:"label"`
	Categories []dataset.Category `json:"categories"`
	Brackets   []search.Bracket   `json:"brackets"`
	Loaded     bool               `json:"loaded"`
	Updating   bool               `json:"updating"`
	FetchedAt  *time.Time         `json:"fetchedAt,omitempty"`
	Count      int                `json:"count"`
}

type listingView struct {
	listing.Record
	TelLink  string `json:"telLink,omitempty"`
	ChatLink string `json:"chatLink,omitempty"`
}

type listingsResponse struct {
	Kind          listing.Kind    `json:"kind"`
	Status        string          `json:"status"`
	Criteria      search.Criteria `json:"criteria"`
	Count         int             `json:"count"`
	Empty         bool            `json:"empty"`
	FetchedAt     time.Time       `json:"fetchedAt"`
	SourcesFailed int             `json:"sourcesFailed,omitempty"`
	Listings      []listingView   `json:"listings"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	views := make([]datasetView, 0, len(s.catalog.Kinds()))
	for _, kind := range s.catalog.Kinds() {
		store, err := s.catalog.Store(kind)
		if err != nil {
			continue
		}
		ds := store.Dataset()
		view := datasetView{
			Kind:       ds.Kind,
			Label:      ds.Label,
			Categories: ds.Categories(),
			Brackets:   ds.Search.Brackets,
		}
		if snapshot := store.Snapshot(); snapshot != nil {
			fetchedAt := snapshot.FetchedAt
			view.Loaded = true
			view.Updating = snapshot.Err != nil
			view.FetchedAt = &fetchedAt
			view.Count = len(snapshot.Records)
		}
		views = append(views, view)
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	store, ok := s.lookupStore(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	if strings.TrimSpace(query.Get("refresh")) == "1" {
		if _, err := store.Refresh(r.Context()); err != nil {
			s.writeError(w, err)
			return
		}
	}

	criteria := search.Criteria{
		Category: strings.TrimSpace(query.Get("category")),
		Query:    query.Get("q"),
		Bracket:  strings.TrimSpace(query.Get("price")),
	}
	records, err := store.Listings(r.Context(), criteria)
	if err != nil {
		s.writeError(w, err)
		return
	}

	snapshot := store.Snapshot()
	resp := listingsResponse{
		Kind:          store.Dataset().Kind,
		Status:        "ok",
		Criteria:      criteria,
		Count:         len(records),
		Empty:         len(records) == 0,
		FetchedAt:     snapshot.FetchedAt,
		SourcesFailed: snapshot.SourcesFailed,
		Listings:      make([]listingView, 0, len(records)),
	}
	for _, record := range records {
		resp.Listings = append(resp.Listings, newListingView(record))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	store, ok := s.lookupStore(w, r)
	if !ok {
		return
	}

	snapshot, err := store.Ensure(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	record, found := snapshot.Find(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Status: "not_found", Error: "listing not found: " + id})
		return
	}

	writeJSON(w, http.StatusOK, newListingView(record))
}

func (s *Server) lookupStore(w http.ResponseWriter, r *http.Request) (*catalog.Store, bool) {
	kind, err := listing.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Status: "not_found", Error: err.Error()})
		return nil, false
	}
	store, err := s.catalog.Store(kind)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return store, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	switch status {
	case http.StatusServiceUnavailable:
		writeJSON(w, status, errorResponse{Status: "updating", Error: "Đang cập nhật dữ liệu, vui lòng thử lại sau"})
	case http.StatusNotFound:
		writeJSON(w, status, errorResponse{Status: "not_found", Error: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Status: "error", Error: err.Error()})
	}
}

func newListingView(record listing.Record) listingView {
	return listingView{Record: record, TelLink: record.TelLink(), ChatLink: record.ChatLink()}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrUpdating):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
