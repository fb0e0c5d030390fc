package logquery

import (
	"strings"
)

// DefaultSize is the maximum number of documents returned by one query.
const DefaultSize = 10_000

// Stream is a log stream of the log store.
type Stream int

const (
	// StreamAPM holds platform transactions.
	StreamAPM Stream = iota
	// StreamClient holds the client-side request and response log.
	StreamClient
)

// Client-side stream direction tags.
const (
	TagRequest  = "HTTP_REQUEST"
	TagResponse = "HTTP_RESPONSE"
)

// DefaultTransactionTypes are the transaction kinds holding marketplace and internal system calls.
var DefaultTransactionTypes = []string{"api.request", "request"}

var apmSource = []string{
	"_id",
	"_index",
	"@timestamp",
	"labels.marketplace_guid",
	"labels.price_type",
	"transaction.custom.request_data",
	"transaction.custom.response_content",
	"transaction.name",
	"transaction.result",
	"transaction.type",
	"user.name",
	"url.path",
	"http.request.body.original",
}

// Query is a bounded, time ordered search request.
// Alternatives inside a field (several endpoints, usernames or statuses) are OR-ed, fields are AND-ed.
type Query struct {
	Stream           Stream
	Window           Window
	Endpoints        []string
	URLPaths         []string
	Usernames        []string
	Statuses         []string
	TransactionTypes []string
	Tag              string
	Size             int
}

// Build returns a transaction stream query.
// Empty username or status don't restrict the query.
func Build(window Window, endpoint, username, status string) Query {
	return Query{
		Stream:           StreamAPM,
		Window:           window,
		Endpoints:        nonEmpty(endpoint),
		Usernames:        nonEmpty(username),
		Statuses:         nonEmpty(status),
		TransactionTypes: DefaultTransactionTypes,
		Size:             DefaultSize,
	}
}

// BuildClient returns a client-side stream query.
func BuildClient(window Window, endpoint, tag string) Query {
	return Query{
		Stream:    StreamClient,
		Window:    window,
		Endpoints: nonEmpty(endpoint),
		Tag:       tag,
		Size:      DefaultSize,
	}
}

// Body renders the query as a search request body.
func (q Query) Body() map[string]any {
	from, to := q.Window.Bounds()
	filters := []any{
		map[string]any{"range": map[string]any{
			"@timestamp": map[string]any{"gte": from, "lte": to},
		}},
	}

	size := q.Size
	if size <= 0 {
		size = DefaultSize
	}

	body := map[string]any{
		"sort": []any{map[string]any{"@timestamp": map[string]any{"order": "asc"}}},
		"size": size,
	}

	switch q.Stream {
	case StreamClient:
		filters = appendClause(filters, anyOf(q.Endpoints, func(e string) any {
			return phrase("log_processed.request_url", e)
		}))
		if q.Tag != "" {
			filters = append(filters, match("log_processed.tags", q.Tag))
		}
	default:
		endpoints := make([]any, 0, len(q.Endpoints)+len(q.URLPaths))
		for _, e := range q.Endpoints {
			endpoints = append(endpoints, endpointClause(e))
		}
		for _, p := range q.URLPaths {
			endpoints = append(endpoints, phrase("url.path", p))
		}
		filters = appendClause(filters, should(endpoints))
		filters = appendClause(filters, anyOf(q.Usernames, func(u string) any { return phrase("user.name", u) }))
		filters = appendClause(filters, anyOf(q.Statuses, func(s string) any { return match("transaction.result", s) }))
		filters = appendClause(filters, anyOf(q.TransactionTypes, func(t string) any { return match("transaction.type", t) }))
		body["_source"] = map[string]any{"includes": apmSource}
	}

	body["query"] = map[string]any{"bool": map[string]any{"filter": filters}}

	return body
}

// IsWildcard tells whether the endpoint pattern contains a wildcard marker.
func IsWildcard(endpoint string) bool {
	return strings.Contains(endpoint, "*")
}

func endpointClause(endpoint string) any {
	if IsWildcard(endpoint) {
		return map[string]any{"wildcard": map[string]any{"transaction.name": endpoint}}
	}

	return phrase("transaction.name", endpoint)
}

func phrase(field, value string) any {
	return map[string]any{"match_phrase": map[string]any{field: value}}
}

func match(field, value string) any {
	return map[string]any{"match": map[string]any{field: value}}
}

func anyOf(values []string, clause func(string) any) any {
	clauses := make([]any, 0, len(values))
	for _, v := range values {
		clauses = append(clauses, clause(v))
	}

	return should(clauses)
}

// should returns nil for no clauses, the clause itself for one and a bool should for more.
func should(clauses []any) any {
	switch len(clauses) {
	case 0:
		return nil
	case 1:
		return clauses[0]
	default:
		return map[string]any{"bool": map[string]any{
			"should":               clauses,
			"minimum_should_match": 1,
		}}
	}
}

func appendClause(filters []any, clause any) []any {
	if clause == nil {
		return filters
	}

	return append(filters, clause)
}

func nonEmpty(value string) []string {
	if value == "" {
		return nil
	}

	return []string{value}
}
