package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/config"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/report"
)

type fakeAPI struct {
	server        *httptest.Server
	listingStatus int
	listingBody   string // raw listing payload; empty serves the default listing
	detailCalls   atomic.Int32
	gotLimit      string
}

// newFakeAPI serves a three-entry listing. Details: bulbasaur is complete,
// ivysaur has no sprite or base experience, mew fails with 500.
func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{listingStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		api.gotLimit = r.URL.Query().Get("limit")
		if api.listingStatus != http.StatusOK {
			w.WriteHeader(api.listingStatus)
			return
		}
		if api.listingBody != "" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(api.listingBody))
			return
		}
		base := api.server.URL + "/api/v2/pokemon/"
		writeJSON(w, map[string]any{
			"count": 3,
			"results": []map[string]string{
				{"name": "bulbasaur", "url": base + "1/"},
				{"name": "ivysaur", "url": base + "2/"},
				{"name": "mew", "url": base + "151/"},
			},
		})
	})
	mux.HandleFunc("/api/v2/pokemon/1/", func(w http.ResponseWriter, _ *http.Request) {
		api.detailCalls.Add(1)
		writeJSON(w, map[string]any{
			"name":            "bulbasaur",
			"sprites":         map[string]any{"front_default": "https://img/1.png"},
			"base_experience": 64,
			"stats": []map[string]any{
				{"base_stat": 45, "stat": map[string]string{"name": "hp"}},
				{"base_stat": 49, "stat": map[string]string{"name": "attack"}},
			},
		})
	})
	mux.HandleFunc("/api/v2/pokemon/2/", func(w http.ResponseWriter, _ *http.Request) {
		api.detailCalls.Add(1)
		writeJSON(w, map[string]any{
			"name":    "ivysaur",
			"sprites": map[string]any{"front_default": nil},
			"stats": []map[string]any{
				{"base_stat": 60, "stat": map[string]string{"name": "hp"}},
			},
		})
	})
	mux.HandleFunc("/api/v2/pokemon/151/", func(w http.ResponseWriter, _ *http.Request) {
		api.detailCalls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)
	return api
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeConfig points the app at api and a log file in a temp dir.
func writeConfig(t *testing.T, api *fakeAPI, extra string) (configPath, logPath string) {
	t.Helper()
	t.Setenv(config.EnvBaseURL, "")
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.toml")
	logPath = filepath.Join(dir, "state", "pokedex.log")
	content := fmt.Sprintf("base_url = %q\nlog_file = %q\n%s", api.server.URL+"/api/v2", logPath, extra)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, logPath
}

func TestList_FiltersAndDropsFailedDetails(t *testing.T) {
	api := newFakeAPI(t)
	configPath, _ := writeConfig(t, api, "")

	var out bytes.Buffer
	opts := Options{ConfigPath: configPath, Query: "SAUR"}
	if err := List(context.Background(), opts, report.FormatJSON, &out); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if api.gotLimit != "50" {
		t.Fatalf("listing limit = %q, want 50", api.gotLimit)
	}
	if got := api.detailCalls.Load(); got != 3 {
		t.Fatalf("detail calls = %d, want 3", got)
	}

	var entities []map[string]any
	if err := json.Unmarshal(out.Bytes(), &entities); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(entities) != 2 {
		t.Fatalf("got %d entities, want 2: %s", len(entities), out.String())
	}
	if entities[0]["name"] != "bulbasaur" || entities[1]["name"] != "ivysaur" {
		t.Fatalf("order = %v, %v; want bulbasaur, ivysaur", entities[0]["name"], entities[1]["name"])
	}
	if entities[0]["hp"] != float64(45) || entities[0]["baseExperience"] != float64(64) {
		t.Fatalf("bulbasaur stats = %v", entities[0])
	}
	if entities[1]["imageUrl"] != catalog.DefaultPlaceholderImage {
		t.Fatalf("ivysaur image = %v, want placeholder", entities[1]["imageUrl"])
	}
	if entities[1]["attack"] != catalog.NotAvailable || entities[1]["baseExperience"] != catalog.NotAvailable {
		t.Fatalf("ivysaur missing stats = %v, want N/A", entities[1])
	}
}

func TestList_TextReportCountsWholeCatalog(t *testing.T) {
	api := newFakeAPI(t)
	configPath, _ := writeConfig(t, api, "")

	var out bytes.Buffer
	opts := Options{ConfigPath: configPath, Query: "ivy"}
	if err := List(context.Background(), opts, report.FormatText, &out); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !strings.Contains(out.String(), `1 of 2 Pokémon matching "ivy"`) {
		t.Fatalf("summary missing from:\n%s", out.String())
	}
}

func TestList_ListingFailureSkipsDetails(t *testing.T) {
	api := newFakeAPI(t)
	api.listingStatus = http.StatusServiceUnavailable
	configPath, _ := writeConfig(t, api, "")

	var out bytes.Buffer
	err := List(context.Background(), Options{ConfigPath: configPath}, report.FormatText, &out)

	var listingErr *catalog.ListingFetchError
	if !errors.As(err, &listingErr) {
		t.Fatalf("List error = %v, want ListingFetchError", err)
	}
	if got := api.detailCalls.Load(); got != 0 {
		t.Fatalf("detail calls = %d, want 0", got)
	}
	if out.Len() != 0 {
		t.Fatalf("List wrote output on failure: %q", out.String())
	}
}

func TestList_MalformedListingIsFatal(t *testing.T) {
	for _, body := range []string{`null`, `{"count": 3}`} {
		t.Run(body, func(t *testing.T) {
			api := newFakeAPI(t)
			api.listingBody = body
			configPath, _ := writeConfig(t, api, "")

			var out bytes.Buffer
			err := List(context.Background(), Options{ConfigPath: configPath}, report.FormatJSON, &out)

			var listingErr *catalog.ListingFetchError
			if !errors.As(err, &listingErr) {
				t.Fatalf("List error = %v, want ListingFetchError", err)
			}
			if !errors.Is(err, pokeapi.ErrMalformedResponse) {
				t.Fatalf("List error = %v, want ErrMalformedResponse", err)
			}
			if got := api.detailCalls.Load(); got != 0 {
				t.Fatalf("detail calls = %d, want 0", got)
			}
			if out.Len() != 0 {
				t.Fatalf("List wrote output on failure: %q", out.String())
			}
		})
	}
}

func TestList_LogsToFile(t *testing.T) {
	api := newFakeAPI(t)
	configPath, logPath := writeConfig(t, api, "")

	if err := List(context.Background(), Options{ConfigPath: configPath}, report.FormatYAML, &bytes.Buffer{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	logText := string(data)
	for _, want := range []string{"level=INFO", "catalog built", "level=WARN", "mew"} {
		if !strings.Contains(logText, want) {
			t.Errorf("log missing %q:\n%s", want, logText)
		}
	}
	if strings.Contains(logText, "level=DEBUG") {
		t.Errorf("debug lines logged without verbose")
	}
}

func TestList_VerboseLogsRequests(t *testing.T) {
	api := newFakeAPI(t)
	configPath, logPath := writeConfig(t, api, "")

	opts := Options{ConfigPath: configPath, Verbose: true}
	if err := List(context.Background(), opts, report.FormatJSON, &bytes.Buffer{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "level=DEBUG") {
		t.Fatalf("verbose log has no debug lines:\n%s", data)
	}
}

func TestList_InvalidConfig(t *testing.T) {
	api := newFakeAPI(t)
	configPath, _ := writeConfig(t, api, "catalog_size = 0\n")

	err := List(context.Background(), Options{ConfigPath: configPath}, report.FormatText, &bytes.Buffer{})
	if !errors.Is(err, config.ErrInvalidCatalogSize) {
		t.Fatalf("List error = %v, want ErrInvalidCatalogSize", err)
	}
}

func TestList_HonorsCatalogSize(t *testing.T) {
	api := newFakeAPI(t)
	configPath, _ := writeConfig(t, api, "catalog_size = 1\n")

	var out bytes.Buffer
	if err := List(context.Background(), Options{ConfigPath: configPath}, report.FormatJSON, &out); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var entities []map[string]any
	if err := json.Unmarshal(out.Bytes(), &entities); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(entities) != 1 || entities[0]["name"] != "bulbasaur" {
		t.Fatalf("entities = %v, want only bulbasaur", entities)
	}
}
