package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/elastic/go-elasticsearch/v8"
)

// Config is the log store client configuration.
type Config struct {
	APMIndex    string
	ClientIndex string
	// APMLink and ClientLink are audit link templates with {index} and {id} placeholders.
	APMLink    string
	ClientLink string
	Timeout    time.Duration
}

// Client searches log documents in Elasticsearch.
type Client struct {
	es  *elasticsearch.Client
	cfg Config
}

// NewClient returns new Client.
func NewClient(es *elasticsearch.Client, cfg Config) *Client {
	return &Client{
		es:  es,
		cfg: cfg,
	}
}

// Search executes the query and returns matched documents in timestamp order.
func (c *Client) Search(ctx context.Context, q logquery.Query) (*models.SearchResult, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(q.Body())
	if err != nil {
		return nil, fmt.Errorf("can't encode query: %w", err)
	}

	index, link := c.cfg.APMIndex, c.cfg.APMLink
	if q.Stream == logquery.StreamClient {
		index, link = c.cfg.ClientIndex, c.cfg.ClientLink
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
		c.es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: can't search %s: %w", platform.ErrTransport, index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		if res.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: log store responded %d: %s", platform.ErrTransport, res.StatusCode, msg)
		}
		return nil, fmt.Errorf("log store rejected query with %d: %s", res.StatusCode, msg)
	}

	var resp response
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: can't decode search response: %w", platform.ErrTransport, err)
	}

	result := &models.SearchResult{
		Total:     resp.Hits.Total.Value,
		Documents: make([]models.Document, 0, len(resp.Hits.Hits)),
	}
	for _, h := range resp.Hits.Hits {
		result.Documents = append(result.Documents, h.document(link))
	}

	return result, nil
}

type response struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []hit `json:"hits"`
	} `json:"hits"`
}

type hit struct {
	Index  string `json:"_index"`
	ID     string `json:"_id"`
	Source struct {
		Timestamp text `json:"@timestamp"`
		Labels    struct {
			MarketplaceGUID text `json:"marketplace_guid"`
			PriceType       text `json:"price_type"`
		} `json:"labels"`
		Transaction struct {
			Name   text `json:"name"`
			Result text `json:"result"`
			Custom struct {
				RequestData     text `json:"request_data"`
				ResponseContent text `json:"response_content"`
			} `json:"custom"`
		} `json:"transaction"`
		User struct {
			Name text `json:"name"`
		} `json:"user"`
		URL struct {
			Path text `json:"path"`
		} `json:"url"`
		HTTP struct {
			Request struct {
				Body struct {
					Original text `json:"original"`
				} `json:"body"`
			} `json:"request"`
		} `json:"http"`
		LogProcessed struct {
			Message text `json:"message"`
		} `json:"log_processed"`
	} `json:"_source"`
}

func (h hit) document(link string) models.Document {
	src := h.Source
	return models.Document{
		Index:           h.Index,
		ID:              h.ID,
		Timestamp:       src.Timestamp.String(),
		TransactionName: src.Transaction.Name.String(),
		Result:          src.Transaction.Result.String(),
		Username:        src.User.Name.String(),
		URLPath:         src.URL.Path.String(),
		MarketplaceGUID: src.Labels.MarketplaceGUID.String(),
		PriceType:       src.Labels.PriceType.String(),
		Request:         src.Transaction.Custom.RequestData.value,
		RequestBody:     src.HTTP.Request.Body.Original.value,
		Response:        src.Transaction.Custom.ResponseContent.value,
		Message:         src.LogProcessed.Message.value,
		Link:            strings.NewReplacer("{index}", h.Index, "{id}", h.ID).Replace(link),
	}
}

// text is a source field that is usually a string but may be logged as any JSON value.
type text struct {
	value *string
}

func (t *text) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	t.value = &s

	return nil
}

func (t text) String() string {
	if t.value == nil {
		return ""
	}

	return *t.value
}
