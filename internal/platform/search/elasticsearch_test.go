package search_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/search"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `{
  "hits": {
    "total": {"value": 2, "relation": "eq"},
    "hits": [
      {
        "_index": "apm-7.17-transaction-000101",
        "_id": "doc-1",
        "_source": {
          "@timestamp": "2023-01-01T00:30:00.000Z",
          "labels": {"marketplace_guid": "mp-1", "price_type": "retail"},
          "transaction": {
            "name": "GET restapi.v1_0.views.StocksView",
            "result": "HTTP 2xx",
            "custom": {"response_content": "{\"results\": []}", "request_data": {"skus": []}}
          },
          "user": {"name": "uteka"}
        }
      },
      {
        "_index": "apm-7.17-transaction-000101",
        "_id": "doc-2",
        "_source": {"@timestamp": "2023-01-01T00:31:00.000Z", "transaction": {"result": 200}}
      }
    ]
  }
}`

var config = search.Config{
	APMIndex:    "apm-*prod-ecom-0*",
	ClientIndex: "k8s-production-*",
	APMLink:     "https://kibana/doc/{index}?id={id}",
	ClientLink:  "https://kibana/client/{index}?id={id}",
}

func newClient(t *testing.T, handler http.HandlerFunc) *search.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	return search.NewClient(es, config)
}

func TestUnitSearch(t *testing.T) {
	var (
		path, trackTotalHits string
		body                 []byte
	)
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		trackTotalHits = r.URL.Query().Get("track_total_hits")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	})
	window := logquery.Window{}

	result, err := client.Search(context.Background(), logquery.Build(window, "GET restapi.v1_0.views.StocksView", "uteka", ""))

	require.NoError(t, err)
	assert.Equal(t, "/apm-*prod-ecom-0*/_search", path)
	assert.Equal(t, "true", trackTotalHits)
	assert.Contains(t, string(body), `"transaction.name":"GET restapi.v1_0.views.StocksView"`)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []models.Document{
		{
			Index:           "apm-7.17-transaction-000101",
			ID:              "doc-1",
			Timestamp:       "2023-01-01T00:30:00.000Z",
			TransactionName: "GET restapi.v1_0.views.StocksView",
			Result:          "HTTP 2xx",
			Username:        "uteka",
			MarketplaceGUID: "mp-1",
			PriceType:       "retail",
			Request:         lo.ToPtr(`{"skus": []}`),
			Response:        lo.ToPtr(`{"results": []}`),
			Link:            "https://kibana/doc/apm-7.17-transaction-000101?id=doc-1",
		},
		{
			Index:     "apm-7.17-transaction-000101",
			ID:        "doc-2",
			Timestamp: "2023-01-01T00:31:00.000Z",
			Result:    "200",
			Link:      "https://kibana/doc/apm-7.17-transaction-000101?id=doc-2",
		},
	}, result.Documents)
}

func TestUnitSearchClientStream(t *testing.T) {
	var path string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":{"total":{"value":0},"hits":[]}}`))
	})

	result, err := client.Search(context.Background(), logquery.BuildClient(logquery.Window{}, "/v1.0/stocks", logquery.TagResponse))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/k8s-production-*/"))
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Documents)
}

func TestUnitSearchErrors(t *testing.T) {
	tests := map[string]struct {
		status            int
		expectedTransport bool
	}{
		"should return transport error on server failure": {
			status:            http.StatusServiceUnavailable,
			expectedTransport: true,
		},
		"should return plain error on rejected query": {
			status: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Elastic-Product", "Elasticsearch")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"type":"failure"}}`))
			})

			_, err := client.Search(context.Background(), logquery.Build(logquery.Window{}, "x", "", ""))

			require.Error(t, err)
			assert.Equal(t, tt.expectedTransport, errors.Is(err, platform.ErrTransport))
		})
	}
}
