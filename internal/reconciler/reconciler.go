package reconciler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/extractor"
	"github.com/MichalMitros/ecom-reconciler/internal/identity"
	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/merge"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/MichalMitros/ecom-reconciler/internal/report"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Resolver --filename resolver.go
//go:generate mockery --name Enricher --filename enricher.go
//go:generate mockery --name Writer --filename writer.go

// Profiles provides marketplace profiles.
type Profiles interface {
	For(marketplace string) (profile.Profile, error)
}

// Resolver resolves identifiers given by the operator.
type Resolver interface {
	Resolve(ctx context.Context, q identity.Query) (models.Identity, error)
}

// Extractor prepares extractions of records.
type Extractor interface {
	Stocks(ctx context.Context, req extractor.Request) (*extractor.Extraction[*models.StockRecord], error)
	Prices(ctx context.Context, req extractor.Request) (*extractor.Extraction[*models.PriceRecord], error)
	Stores(ctx context.Context, req extractor.Request) (*extractor.Extraction[*models.StoreRecord], error)
}

// Enricher keeps records of the organization.
type Enricher interface {
	Apply(
		ctx context.Context,
		records []models.Keyed,
		src profile.Source,
		marketplace string,
		org models.Organization,
	) ([]models.Keyed, error)
}

// Writer writes reports.
type Writer interface {
	// Write writes the report and returns its path.
	Write(name string, layout models.Layout, records []models.Record) (string, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Reconciler.
type Option func(r *Reconciler)

// WithClock sets Reconciler's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Reconciler) {
		r.clock = c
	}
}

// Request is one reconciliation run requested by the operator.
type Request struct {
	Kind        models.Kind
	Marketplace string
	// Organization and Store identify whose records are reconciled, one of them is enough.
	Organization string
	Store        string
	Product      string
	// End is the end of query windows in platform-local time.
	End time.Time
	// Legs to read, both when empty.
	Legs []models.Leg
}

// LegSummary describes records read on one leg.
type LegSummary struct {
	Leg      models.Leg
	Stats    extractor.Stats
	Skipped  int
	Filtered int
}

// Summary describes a finished run.
type Summary struct {
	Identity models.Identity
	Legs     []LegSummary
	Records  int
	Path     string
}

// Reconciler reads records of both legs, keeps those of one identity and writes them as one report.
type Reconciler struct {
	profiles  Profiles
	resolver  Resolver
	extractor Extractor
	enricher  Enricher
	writer    Writer
	logger    *zerolog.Logger
	clock     Clock
}

// NewReconciler returns new Reconciler.
func NewReconciler(
	profiles Profiles,
	resolver Resolver,
	extractor Extractor,
	enricher Enricher,
	writer Writer,
	logger *zerolog.Logger,
	ops ...Option,
) *Reconciler {
	r := &Reconciler{
		profiles:  profiles,
		resolver:  resolver,
		extractor: extractor,
		enricher:  enricher,
		writer:    writer,
		logger:    logger,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(r)
	}

	return r
}

// Run reconciles records of the request.
func (r *Reconciler) Run(ctx context.Context, req Request) (*Summary, error) {
	started := r.clock.Now()

	p, err := r.profiles.For(req.Marketplace)
	if err != nil {
		return nil, err
	}

	legs := orderLegs(req.Legs)
	for _, leg := range legs {
		if err := p.Supports(req.Kind, leg); err != nil {
			return nil, err
		}
	}

	id, err := r.resolver.Resolve(ctx, identity.Query{
		Organization: req.Organization,
		Store:        req.Store,
		Product:      req.Product,
		Verbatim:     p.Verbatim,
	})
	if err != nil {
		return nil, fmt.Errorf("can't resolve identity: %w", err)
	}
	if id.IsEmpty() {
		return nil, fmt.Errorf("can't resolve identity: %w",
			&platform.NotFoundError{Entity: "organization or store", Identifier: req.Organization + req.Store})
	}
	r.logIdentity(req, id)

	summary := &Summary{Identity: id}
	sets := make([][]models.Record, 0, len(legs))
	layouts := make([]models.Layout, 0, len(legs))

	for _, leg := range legs {
		src := p.Source(req.Kind, leg)
		records, legSummary, err := r.leg(ctx, req, p, id, leg)
		if err != nil {
			return nil, err
		}

		kept, err := r.enricher.Apply(ctx, records, src, p.Name, id.Organization)
		if err != nil {
			return nil, fmt.Errorf("can't filter %s %s: %w", leg, req.Kind, err)
		}
		legSummary.Filtered = len(records) - len(kept)

		r.logger.Info().
			Str("leg", string(leg)).
			Int("records", len(records)).
			Int("kept", len(kept)).
			Str("filter", src.Filter.String()).
			Msg("records filtered")

		summary.Legs = append(summary.Legs, legSummary)
		sets = append(sets, lo.Map(kept, func(k models.Keyed, _ int) models.Record { return k }))
		layouts = append(layouts, src.Layout)
	}

	records, layout := sets[0], layouts[0]
	if len(sets) == 2 {
		records = merge.Merge(sets[0], sets[1])
		layout = merge.Columns(layouts[0], layouts[1], models.ColumnLink)
	}

	path, err := r.writer.Write(report.FileName(req.Kind), layout, records)
	if err != nil {
		return nil, fmt.Errorf("can't write report: %w", err)
	}
	summary.Records = len(records)
	summary.Path = path

	r.logger.Info().
		Str("path", path).
		Int("records", len(records)).
		Dur("took", r.clock.Now().Sub(started)).
		Msg("report created")

	return summary, nil
}

// leg reads records of one leg.
func (r *Reconciler) leg(
	ctx context.Context,
	req Request,
	p profile.Profile,
	id models.Identity,
	leg models.Leg,
) ([]models.Keyed, LegSummary, error) {
	xreq := extractor.Request{
		Profile:  p,
		Identity: id,
		Leg:      leg,
		End:      req.End,
	}

	switch req.Kind {
	case models.KindStocks:
		x, err := r.extractor.Stocks(ctx, xreq)
		if err != nil {
			return nil, LegSummary{}, fmt.Errorf("can't prepare %s stocks: %w", leg, err)
		}
		return drain(ctx, r.logger, x)
	case models.KindPrices:
		x, err := r.extractor.Prices(ctx, xreq)
		if err != nil {
			return nil, LegSummary{}, fmt.Errorf("can't prepare %s prices: %w", leg, err)
		}
		return drain(ctx, r.logger, x)
	case models.KindStores:
		x, err := r.extractor.Stores(ctx, xreq)
		if err != nil {
			return nil, LegSummary{}, fmt.Errorf("can't prepare %s stores: %w", leg, err)
		}
		return drain(ctx, r.logger, x)
	default:
		return nil, LegSummary{}, fmt.Errorf("unknown record kind %q", req.Kind)
	}
}

// drain materializes records of the extraction, logging skipped documents and count mismatches.
func drain[T models.Keyed](
	ctx context.Context,
	logger *zerolog.Logger,
	x *extractor.Extraction[T],
) ([]models.Keyed, LegSummary, error) {
	summary := LegSummary{Leg: x.Leg}
	logQuery(logger, x.Leg, x.Query, x.FeedPattern)

	var records []models.Keyed
	for record, err := range x.Records(ctx) {
		var docErr *extractor.DocumentError
		switch {
		case errors.As(err, &docErr):
			summary.Skipped++
			logger.Warn().
				Err(docErr.Err).
				Str("leg", string(x.Leg)).
				Str("link", docErr.Link).
				Msg("document skipped")
		case err != nil:
			return nil, summary, fmt.Errorf("can't read %s %s: %w", x.Leg, x.Kind, err)
		default:
			records = append(records, record)
		}
	}

	summary.Stats = x.Stats()
	logStats(logger, x.Leg, summary.Stats, x.Source.FromFeed())

	if mismatch := x.Mismatch(); mismatch != nil {
		logger.Warn().
			Err(mismatch).
			Str("leg", string(x.Leg)).
			Int("totalHits", mismatch.Total).
			Int("parsed", mismatch.Parsed).
			Msg("count mismatch, widen the window or raise the result cap")
	}

	return records, summary, nil
}

func (r *Reconciler) logIdentity(req Request, id models.Identity) {
	event := r.logger.Info().
		Str("marketplace", req.Marketplace).
		Str("kind", string(req.Kind)).
		Str("organization", id.Organization.Name).
		Ints("regions", id.Organization.RelatedRegions)
	if id.Store != nil {
		event = event.Str("store", id.Store.GUID)
	}
	if id.Product != nil {
		event = event.Strs("product", id.Product.Identifiers())
	}
	event.Msg("identity resolved")
}

func logQuery(logger *zerolog.Logger, leg models.Leg, q *logquery.Query, feedPattern string) {
	if feedPattern != "" {
		logger.Info().
			Str("leg", string(leg)).
			Str("pattern", feedPattern).
			Msg("reading feed")
		return
	}
	if q == nil {
		return
	}

	logger.Debug().
		Str("leg", string(leg)).
		Interface("query", q.Body()).
		Msg("searching logs")
}

func logStats(logger *zerolog.Logger, leg models.Leg, stats extractor.Stats, fromFeed bool) {
	if fromFeed {
		logger.Info().
			Str("leg", string(leg)).
			Str("feed", stats.FeedName).
			Str("size", humanize.Bytes(uint64(stats.FeedSize))).
			Time("modifiedAt", stats.FeedModifiedAt).
			Int("records", stats.Records).
			Msg("feed read")
		return
	}

	logger.Info().
		Str("leg", string(leg)).
		Int("totalHits", stats.TotalHits).
		Int("returned", stats.Returned).
		Int("parsed", stats.Parsed).
		Int("malformed", stats.Malformed).
		Int("truncated", stats.Truncated).
		Int("records", stats.Records).
		Msg("logs read")
}

// orderLegs puts the internal leg first, no legs means both.
func orderLegs(legs []models.Leg) []models.Leg {
	if len(legs) == 0 {
		return []models.Leg{models.LegInternal, models.LegMarketplace}
	}

	ordered := lo.Uniq(legs)
	slices.SortFunc(ordered, func(a, b models.Leg) int {
		if a == b {
			return 0
		}
		if a == models.LegInternal {
			return -1
		}
		return 1
	})

	return ordered
}
