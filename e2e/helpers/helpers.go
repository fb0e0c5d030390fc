package helpers

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/MichalMitros/ecom-reconciler/internal/report"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"
)

const (
	contentType    = "Content-Type"
	productHeader  = "X-Elastic-Product"
	productName    = "Elasticsearch"
	jsonContent    = "application/json"
	searchEndpoint = "/_search"
)

// Hit is a log document returned by the mocked log store.
type Hit struct {
	Index     string
	ID        string
	Timestamp string
	Username  string
	Response  string
}

// Route picks hits and the response status for a search request body.
type Route func(body string) ([]Hit, int)

// LogStore is a mocked Elasticsearch search API.
type LogStore struct {
	mu     sync.Mutex
	bodies []string
}

// Bodies returns search request bodies in the order they were received.
func (s *LogStore) Bodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.bodies...)
}

// PrepareMockedLogStore is helper function for mocking the log store and its client.
func PrepareMockedLogStore(t *testing.T, route Route) (*elasticsearch.Client, *LogStore) {
	t.Helper()

	store := &LogStore{}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(productHeader, productName)
		wrt.Header().Add(contentType, jsonContent)

		if !strings.HasSuffix(req.URL.Path, searchEndpoint) {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}

		body, err := io.ReadAll(req.Body)
		if err != nil {
			wrt.WriteHeader(http.StatusBadRequest)
			return
		}

		store.mu.Lock()
		store.bodies = append(store.bodies, string(body))
		store.mu.Unlock()

		hits, status := route(string(body))
		if status != http.StatusOK {
			wrt.WriteHeader(status)
			_, _ = wrt.Write([]byte(`{"error":"unavailable"}`))
			return
		}

		wrt.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(wrt).Encode(searchResponse(hits))
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{srv.URL},
		DisableRetry: true,
	})
	if err != nil {
		require.FailNow(t, "can't create elasticsearch client", err)
	}

	return es, store
}

func searchResponse(hits []Hit) map[string]any {
	docs := make([]map[string]any, 0, len(hits))
	for _, h := range hits {
		docs = append(docs, map[string]any{
			"_index": h.Index,
			"_id":    h.ID,
			"_source": map[string]any{
				"@timestamp": h.Timestamp,
				"user":       map[string]any{"name": h.Username},
				"transaction": map[string]any{
					"result": "HTTP 2xx",
					"custom": map[string]any{"response_content": h.Response},
				},
			},
		})
	}

	return map[string]any{
		"hits": map[string]any{
			"total": map[string]any{"value": len(hits)},
			"hits":  docs,
		},
	}
}

// ReadReport is helper function for reading a tab delimited report into rows keyed by column.
func ReadReport(t *testing.T, path string) []map[string]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		require.FailNow(t, "can't open report", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = report.Delimiter
	r.FieldsPerRecord = -1

	lines, err := r.ReadAll()
	if err != nil {
		require.FailNow(t, "can't read report", err)
	}
	require.NotEmpty(t, lines, "report should have a header")

	header := lines[0]
	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		require.Len(t, line, len(header), "row should have a cell for every column")

		row := make(map[string]string, len(header))
		for ix, column := range header {
			row[column] = line[ix]
		}
		rows = append(rows, row)
	}

	return rows
}
