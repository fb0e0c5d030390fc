package extractor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/decoder"
	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/samber/lo"
)

//go:generate mockery --name Searcher --filename searcher.go
//go:generate mockery --name FeedFetcher --filename feed_fetcher.go
//go:generate mockery --name Storage --filename storage.go

// Searcher runs log store queries.
type Searcher interface {
	Search(ctx context.Context, q logquery.Query) (*models.SearchResult, error)
}

// FeedFetcher downloads the latest feed file matching a pattern.
type FeedFetcher interface {
	FetchLatest(ctx context.Context, account, dir, pattern string) (*models.Feed, error)
}

// Storage provides lookups needed to build queries.
type Storage interface {
	// MarketplaceGUID returns GUID of the marketplace served by the API user.
	MarketplaceGUID(ctx context.Context, marketplace string) (string, error)
	// PriceSettings maps price list GUIDs of the organization to whether module b2c prices are enabled.
	PriceSettings(ctx context.Context, marketplace, orgName string) (map[string]bool, error)
}

// TruncationPolicy decides what happens when the log store holds more hits than one query returns.
type TruncationPolicy string

const (
	// TruncationWarn keeps the returned documents, the caller reports the count mismatch.
	TruncationWarn TruncationPolicy = "warn"
	// TruncationFail stops the extraction with platform.ErrResultCapExceeded.
	TruncationFail TruncationPolicy = "fail"
)

// Option is custom configuration of Extractor.
type Option func(e *Extractor)

// WithLocation sets the platform-local time zone of record timestamps.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		e.loc = loc
	}
}

// WithTruncationPolicy sets the policy applied to capped results.
func WithTruncationPolicy(policy TruncationPolicy) Option {
	return func(e *Extractor) {
		e.policy = policy
	}
}

// WithMaxHits sets the maximum number of documents one query returns.
func WithMaxHits(n int) Option {
	return func(e *Extractor) {
		e.maxHits = n
	}
}

// Extractor turns log documents and feed files into records.
type Extractor struct {
	searcher Searcher
	feeds    FeedFetcher
	storage  Storage
	decoder  decoder.Decoder
	loc      *time.Location
	policy   TruncationPolicy
	maxHits  int
}

// NewExtractor returns new Extractor.
func NewExtractor(searcher Searcher, feeds FeedFetcher, storage Storage, ops ...Option) *Extractor {
	e := &Extractor{
		searcher: searcher,
		feeds:    feeds,
		storage:  storage,
		loc:      time.UTC,
		policy:   TruncationWarn,
		maxHits:  logquery.DefaultSize,
	}

	for _, op := range ops {
		op(e)
	}

	return e
}

// Request selects the leg to read and the identity records are read for.
type Request struct {
	Profile  profile.Profile
	Identity models.Identity
	Leg      models.Leg
	// End is the end of the query window, its start depends on the source period.
	End time.Time
}

// Stocks prepares extraction of stock records.
func (e *Extractor) Stocks(ctx context.Context, req Request) (*Extraction[*models.StockRecord], error) {
	x, err := prepare[*models.StockRecord](ctx, e, req, models.KindStocks)
	if err != nil {
		return nil, err
	}
	x.build = x.stock

	return x, nil
}

// Prices prepares extraction of price records.
func (e *Extractor) Prices(ctx context.Context, req Request) (*Extraction[*models.PriceRecord], error) {
	x, err := prepare[*models.PriceRecord](ctx, e, req, models.KindPrices)
	if err != nil {
		return nil, err
	}
	x.build = x.price

	return x, nil
}

// Stores prepares extraction of store records.
func (e *Extractor) Stores(ctx context.Context, req Request) (*Extraction[*models.StoreRecord], error) {
	x, err := prepare[*models.StoreRecord](ctx, e, req, models.KindStores)
	if err != nil {
		return nil, err
	}
	x.build = x.store

	return x, nil
}

// prepare resolves placeholders and builds the query or the feed pattern. Nothing is searched yet.
func prepare[T models.Keyed](ctx context.Context, e *Extractor, req Request, kind models.Kind) (*Extraction[T], error) {
	if err := req.Profile.Supports(kind, req.Leg); err != nil {
		return nil, err
	}
	src := req.Profile.Source(kind, req.Leg)

	values, err := e.values(ctx, req, src)
	if err != nil {
		return nil, err
	}

	x := &Extraction[T]{
		Leg:      req.Leg,
		Kind:     kind,
		Source:   src,
		searcher: e.searcher,
		feeds:    e.feeds,
		decoder:  e.decoder,
		loc:      e.loc,
		policy:   e.policy,
		org:      req.Identity.Organization,
		products: req.Identity.Product.Identifiers(),
	}
	if kind == models.KindStores && !src.FromFeed() {
		x.stores = req.Identity.StoreKeys()
	}

	if src.FromFeed() {
		if missing := values.Missing(src.Feed.Pattern); len(missing) > 0 {
			return nil, &platform.NotFoundError{
				Entity:     fmt.Sprintf("%s feed (no %s)", req.Profile.Name, strings.Join(missing, ", ")),
				Identifier: req.Identity.Organization.Name,
			}
		}
		x.FeedPattern = values.Expand(src.Feed.Pattern)

		return x, nil
	}

	q := e.query(src, values, logquery.NewWindow(req.End, src.Period))
	if src.Variant == profile.VariantPriceTime {
		if x.origin, err = e.priceOrigin(ctx, req); err != nil {
			return nil, err
		}
		x.origin.apply(&q, src, values)
	}
	x.Query = &q

	return x, nil
}

func (e *Extractor) query(src profile.Source, values profile.Values, window logquery.Window) logquery.Query {
	if src.Stream == logquery.StreamClient {
		q := logquery.BuildClient(window, "", src.Tag)
		q.Endpoints = values.ExpandAll(src.Endpoints)
		q.Size = e.maxHits

		return q
	}

	return logquery.Query{
		Stream:           logquery.StreamAPM,
		Window:           window,
		Endpoints:        values.ExpandAll(src.Endpoints),
		URLPaths:         values.ExpandAll(src.URLPaths),
		Usernames:        lo.Compact([]string{values.Expand(src.Username)}),
		Statuses:         src.Statuses,
		TransactionTypes: logquery.DefaultTransactionTypes,
		Size:             e.maxHits,
	}
}

func (e *Extractor) values(ctx context.Context, req Request, src profile.Source) (profile.Values, error) {
	org := req.Identity.Organization
	values := profile.Values{
		Marketplace:      req.Profile.Name,
		Endpoint:         org.Endpoint,
		CampaignID:       lo.FromPtr(org.CampaignID),
		SbermmCampaignID: lo.FromPtr(org.SbermmCampaignID),
		LatinName:        lo.FromPtr(org.LatinName),
	}

	if store := req.Identity.Store; store != nil {
		values.Store = store.GUID
		if store.OutletID != nil {
			values.Outlet = strconv.FormatInt(*store.OutletID, 10)
		}
	}

	if lo.SomeBy(src.Endpoints, func(e string) bool { return strings.Contains(e, "{marketplace_guid}") }) {
		guid, err := e.storage.MarketplaceGUID(ctx, req.Profile.Name)
		if err != nil {
			return profile.Values{}, fmt.Errorf("can't get marketplace guid: %w", err)
		}
		values.MarketplaceGUID = guid
	}

	return values, nil
}

// priceOrigin decides whether internal price lists come from the internal system, the b2c module or both.
func (e *Extractor) priceOrigin(ctx context.Context, req Request) (*priceOrigin, error) {
	settings, err := e.storage.PriceSettings(ctx, req.Profile.Name, req.Identity.Organization.Name)
	if err != nil {
		return nil, fmt.Errorf("can't get price settings: %w", err)
	}

	enabled := lo.Values(settings)
	switch {
	// Without any settings the profile decides, not the organization.
	case len(enabled) == 0 && req.Profile.ModuleB2C:
		return &priceOrigin{b2c: true}, nil
	case len(enabled) == 0:
		return &priceOrigin{internal: true}, nil
	case lo.EveryBy(enabled, enabledB2C):
		return &priceOrigin{b2c: true}, nil
	case lo.NoneBy(enabled, enabledB2C):
		return &priceOrigin{internal: true}, nil
	default:
		return &priceOrigin{internal: true, b2c: true}, nil
	}
}

func enabledB2C(enabled bool) bool {
	return enabled
}

// priceOrigin selects the channels internal price lists are read from.
type priceOrigin struct {
	internal bool
	b2c      bool
}

func (o *priceOrigin) apply(q *logquery.Query, src profile.Source, values profile.Values) {
	if o.internal && o.b2c {
		q.Endpoints = append(q.Endpoints, values.Expand(src.B2C.Endpoint))
		q.Usernames = append(q.Usernames, src.B2C.Username)
		return
	}
	if o.b2c {
		q.Endpoints = []string{values.Expand(src.B2C.Endpoint)}
		q.Usernames = []string{src.B2C.Username}
	}
}

// isB2C tells whether the document was logged by the b2c module.
func (o *priceOrigin) isB2C(src profile.Source, doc models.Document) bool {
	if o.internal && o.b2c {
		return doc.Username == src.B2C.Username
	}

	return o.b2c
}
