package logquery_test

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moscow = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestUnitWindowBounds(t *testing.T) {
	end, err := logquery.ParseInput("2023-01-01T06:00:00.000Z", moscow)
	require.NoError(t, err)

	from, to := logquery.NewWindow(end, 3*time.Hour).Bounds()

	assert.Equal(t, "2023-01-01T00:00:00.000Z", from)
	assert.Equal(t, "2023-01-01T03:00:00.000Z", to)
}

func TestUnitParseInput(t *testing.T) {
	expected := time.Date(2023, 3, 14, 15, 9, 26, 535_000_000, moscow)

	tests := map[string]struct {
		input       string
		expected    time.Time
		expectError bool
	}{
		"should parse ISO date time with Z as local time": {
			input:    "2023-03-14T15:09:26.535Z",
			expected: expected,
		},
		"should parse dashboard date time": {
			input:    "Mar 14, 2023 @ 15:09:26.535",
			expected: expected,
		},
		"should parse date time without fraction": {
			input:    "2023-03-14 15:09:26",
			expected: expected.Truncate(time.Second),
		},
		"should fail on garbage": {
			input:       "yesterday",
			expectError: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := logquery.ParseInput(tt.input, moscow)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(actual), "expected %s, got %s", tt.expected, actual)
		})
	}
}

func TestUnitParseTimestamp(t *testing.T) {
	ts, err := logquery.ParseTimestamp("2023-01-01T00:00:00.123Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 123_000_000, time.UTC), ts)

	_, err = logquery.ParseTimestamp("not a timestamp")
	require.Error(t, err)
}

func TestUnitBuildBody(t *testing.T) {
	window := logquery.Window{
		From: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2023, 1, 1, 3, 0, 0, 0, time.UTC),
	}
	rangeClause := `{"range":{"@timestamp":{"gte":"2023-01-01T00:00:00.000Z","lte":"2023-01-01T03:00:00.000Z"}}}`
	typesClause := `{"bool":{"minimum_should_match":1,"should":[` +
		`{"match":{"transaction.type":"api.request"}},{"match":{"transaction.type":"request"}}]}}`

	tests := map[string]struct {
		query           logquery.Query
		expectedFilters string
	}{
		"should use phrase match for literal endpoint": {
			query: logquery.Build(window, "GET restapi.v1_0.views.StocksView", "uteka", "HTTP 2xx"),
			expectedFilters: `[` + rangeClause +
				`,{"match_phrase":{"transaction.name":"GET restapi.v1_0.views.StocksView"}}` +
				`,{"match_phrase":{"user.name":"uteka"}}` +
				`,{"match":{"transaction.result":"HTTP 2xx"}},` + typesClause + `]`,
		},
		"should use wildcard for endpoint pattern and skip empty username and status": {
			query: logquery.Build(window, "*apipartners.eapteka.ru/1_0/stores*", "", ""),
			expectedFilters: `[` + rangeClause +
				`,{"wildcard":{"transaction.name":"*apipartners.eapteka.ru/1_0/stores*"}},` + typesClause + `]`,
		},
		"should or alternatives": {
			query: logquery.Query{
				Window:    window,
				Endpoints: []string{"PUT https://api/stocks.json"},
				URLPaths:  []string{"/v1.0/yandex/x/cart"},
				Usernames: []string{"puls", "moduleb2c"},
			},
			expectedFilters: `[` + rangeClause +
				`,{"bool":{"minimum_should_match":1,"should":[` +
				`{"match_phrase":{"transaction.name":"PUT https://api/stocks.json"}},` +
				`{"match_phrase":{"url.path":"/v1.0/yandex/x/cart"}}]}}` +
				`,{"bool":{"minimum_should_match":1,"should":[` +
				`{"match_phrase":{"user.name":"puls"}},{"match_phrase":{"user.name":"moduleb2c"}}]}}]`,
		},
		"should build client stream query": {
			query: logquery.BuildClient(window, "/v1.0/stocks?storeId=1", logquery.TagResponse),
			expectedFilters: `[` + rangeClause +
				`,{"match_phrase":{"log_processed.request_url":"/v1.0/stocks?storeId=1"}}` +
				`,{"match":{"log_processed.tags":"HTTP_RESPONSE"}}]`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			body := tt.query.Body()

			filters, err := json.Marshal(body["query"].(map[string]any)["bool"].(map[string]any)["filter"])
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedFilters, string(filters))
			assert.Equal(t, logquery.DefaultSize, body["size"])

			sort, err := json.Marshal(body["sort"])
			require.NoError(t, err)
			assert.JSONEq(t, `[{"@timestamp":{"order":"asc"}}]`, string(sort))
		})
	}
}
