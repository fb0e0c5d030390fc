package extractor

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/decoder"
	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
)

// ErrConsumed is yielded when records of an extraction are iterated more than once.
var ErrConsumed = errors.New("records already consumed")

// DocumentError reports a document or a feed element that was skipped, fully or partially.
type DocumentError struct {
	Link string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("skipped %s: %v", e.Link, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Stats counts what the extraction has read so far.
type Stats struct {
	// TotalHits is the number of hits the log store matched.
	TotalHits int
	// Returned is the number of documents the log store returned.
	Returned int
	// Parsed is the number of documents parsed without errors.
	Parsed    int
	Malformed int
	Truncated int
	// Records is the number of yielded records.
	Records int

	FeedName       string
	FeedSize       int64
	FeedModifiedAt time.Time
}

// Extraction is a prepared, single pass read of one record kind on one leg.
type Extraction[T models.Keyed] struct {
	Leg    models.Leg
	Kind   models.Kind
	Source profile.Source
	// Query is the log store query, nil for feed sources.
	Query *logquery.Query
	// FeedPattern is the expanded feed file pattern of feed sources.
	FeedPattern string

	searcher Searcher
	feeds    FeedFetcher
	decoder  decoder.Decoder
	loc      *time.Location
	policy   TruncationPolicy

	org      models.Organization
	products []string
	stores   []string
	origin   *priceOrigin
	build    func(el element, base models.Base) T

	stats    Stats
	consumed bool
}

// Records returns the lazy sequence of records. The query is issued when iteration starts.
// Skipped documents are reported as DocumentError and iteration goes on,
// any other error is the last value of the sequence.
// The sequence can be iterated once, later iterations yield ErrConsumed.
func (x *Extraction[T]) Records(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		if x.consumed {
			yield(zero, ErrConsumed)
			return
		}
		x.consumed = true

		if x.Source.FromFeed() {
			x.fromFeed(ctx, yield)
			return
		}
		x.fromLogs(ctx, yield)
	}
}

// Stats returns counters of the records read so far.
func (x *Extraction[T]) Stats() Stats {
	return x.stats
}

// Mismatch returns a warning when the log store matched more hits than were parsed cleanly.
func (x *Extraction[T]) Mismatch() *platform.CountMismatchWarning {
	if x.Source.FromFeed() || x.stats.TotalHits <= x.stats.Parsed {
		return nil
	}

	return &platform.CountMismatchWarning{
		Leg:    string(x.Leg),
		Total:  x.stats.TotalHits,
		Parsed: x.stats.Parsed,
	}
}

func (x *Extraction[T]) fromLogs(ctx context.Context, yield func(T, error) bool) {
	var zero T

	result, err := x.searcher.Search(ctx, *x.Query)
	if err != nil {
		yield(zero, fmt.Errorf("can't search %s %s: %w", x.Leg, x.Kind, err))
		return
	}
	x.stats.TotalHits = result.Total
	x.stats.Returned = len(result.Documents)

	if result.Truncated() && x.policy == TruncationFail {
		yield(zero, fmt.Errorf("%w: %d hits matched, %d returned", platform.ErrResultCapExceeded, result.Total, len(result.Documents)))
		return
	}

	for _, doc := range result.Documents {
		if err := ctx.Err(); err != nil {
			yield(zero, err)
			return
		}

		ts, err := logquery.ParseTimestamp(doc.Timestamp)
		if err != nil {
			x.stats.Malformed++
			if !yield(zero, &DocumentError{Link: doc.Link, Err: fmt.Errorf("%w: %w", platform.ErrMalformedPayload, err)}) {
				return
			}
			continue
		}

		base := models.Base{
			Direction: x.Source.Direction,
			Time:      ts.In(x.loc),
			Link:      doc.Link,
		}
		if !x.emit(x.elements(doc), base, yield) {
			return
		}
	}
}

func (x *Extraction[T]) fromFeed(ctx context.Context, yield func(T, error) bool) {
	var zero T

	feed, err := x.feeds.FetchLatest(ctx, x.Source.Feed.Account, x.Source.Feed.Dir, x.FeedPattern)
	if err != nil {
		yield(zero, fmt.Errorf("can't fetch %s feed: %w", x.Kind, err))
		return
	}
	defer feed.Body.Close()

	x.stats.FeedName = feed.Name
	x.stats.FeedSize = feed.Size
	x.stats.FeedModifiedAt = feed.ModifiedAt

	base := models.Base{
		Direction: x.Source.Direction,
		Time:      feed.ModifiedAt.In(x.loc),
		Link:      x.Source.Feed.LinkPrefix + feed.Name,
	}
	x.emit(x.feedElements(feed), base, yield)
}

// emit yields records of one document or feed. It returns false when the consumer stopped.
func (x *Extraction[T]) emit(elements iter.Seq2[element, error], base models.Base, yield func(T, error) bool) bool {
	var (
		zero      T
		malformed bool
		truncated bool
	)

	defer func() {
		switch {
		case truncated:
			x.stats.Truncated++
		case malformed:
			x.stats.Malformed++
		default:
			x.stats.Parsed++
		}
	}()

	for el, err := range elements {
		if err != nil {
			if errors.Is(err, platform.ErrTruncatedPayload) {
				truncated = true
			} else {
				malformed = true
			}
			if !yield(zero, &DocumentError{Link: base.Link, Err: err}) {
				return false
			}
			continue
		}

		if !x.accepts(el) {
			continue
		}

		x.stats.Records++
		if !yield(x.build(el, base), nil) {
			return false
		}
	}

	return true
}
