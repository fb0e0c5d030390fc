package profile

import (
	"fmt"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
)

// FilterBasis decides which extracted records belong to the organization under investigation.
type FilterBasis int

const (
	// FilterNone keeps every record, the query is already scoped to one organization.
	FilterNone FilterBasis = iota
	// FilterRegion keeps records whose region code is related to the organization.
	FilterRegion
	// FilterSecondaryLookup resolves record keys to organizations with one batched lookup.
	FilterSecondaryLookup
	// FilterOrganizationID keeps records carrying the organization id.
	FilterOrganizationID
)

func (b FilterBasis) String() string {
	switch b {
	case FilterNone:
		return "none"
	case FilterRegion:
		return "region"
	case FilterSecondaryLookup:
		return "organization-by-secondary-lookup"
	case FilterOrganizationID:
		return "organization-id"
	default:
		return fmt.Sprintf("FilterBasis(%d)", int(b))
	}
}

// Variant selects how documents of a source are turned into records.
type Variant int

const (
	// VariantStandard reads an array of flat elements.
	VariantStandard Variant = iota
	// VariantPriceTime reads internal price lists, from the internal system or from the b2c module.
	VariantPriceTime
	// VariantEaptekaErrors reads request elements and attaches the response error mentioning the product.
	VariantEaptekaErrors
	// VariantOzon pairs request elements with response results by position.
	VariantOzon
	// VariantYandexStocks reads stock pushes and cart responses.
	VariantYandexStocks
	// VariantYandexStores reads outlet create, update and delete calls.
	VariantYandexStores
	// VariantFeedOffers reads offers of an XML feed.
	VariantFeedOffers
	// VariantFeedArray reads elements of a JSON feed.
	VariantFeedArray
)

// Fields maps record attributes to payload field paths. Paths are dotted, numeric segments index arrays.
type Fields struct {
	Product    string
	Quantity   string
	Price      string
	Expiration string
	// Key holds the region code, price list GUID or organization id used by the filter basis.
	Key string

	PriceType   string
	Errors      string
	Operation   string
	AddressGUID string

	VAT         string
	PriceIncVAT string
	PriceWoVAT  string
	PricePromo  string
	PriceB2C    string
	PriceB2B    string
	VATB2B      string

	Store        string
	StoreID      string
	Address      string
	B2BPriceGUID string
	B2CPriceGUID string
	DeliveryInfo string
	Deadline     string
	Delivery     string

	Visibility    string
	DeliveryRules string
}

// Channel is an alternative origin of internal price lists.
type Channel struct {
	Endpoint string
	Username string
	Wrapper  []string
}

// Feed locates feed files on the feed server.
type Feed struct {
	Account string
	Dir     string
	// Pattern is a path.Match pattern with placeholders.
	Pattern    string
	LinkPrefix string
}

// Source describes where and how records of one kind are read on one leg.
type Source struct {
	// Unsupported is the reason the marketplace doesn't provide the records. Empty means supported.
	Unsupported string

	Variant   Variant
	Direction models.Direction
	Layout    models.Layout

	Stream    logquery.Stream
	Endpoints []string
	URLPaths  []string
	Username  string
	Statuses  []string
	Tag       string
	Period    time.Duration

	Payload models.PayloadLocation
	Wrapper []string
	// ResultWrapper locates per element results in the response when they are paired with request elements.
	ResultWrapper []string
	// Streaming decodes the payload incrementally so a truncated payload keeps its complete elements.
	Streaming bool
	Fields    Fields

	Filter           FilterBasis
	Lookup           models.LookupKind
	CheckNoneRegions bool

	QuoteProduct      bool
	PriceGUIDFromName bool
	B2C               Channel

	Feed *Feed
}

// Supported tells whether the source provides records.
func (s Source) Supported() bool {
	return s.Unsupported == ""
}

// FromFeed tells whether records come from a feed file instead of the log store.
func (s Source) FromFeed() bool {
	return s.Feed != nil
}

// Profile is the integration of one marketplace.
type Profile struct {
	Name string
	// StocksInsteadPrices makes marketplace prices come from the stocks endpoint.
	StocksInsteadPrices bool
	// ModuleB2C makes the b2c module the internal price origin when no price settings exist.
	ModuleB2C bool
	// Verbatim profiles use identifiers as given, without relational resolution.
	Verbatim bool

	InternalStocks    Source
	InternalPrices    Source
	InternalStores    Source
	MarketplaceStocks Source
	MarketplacePrices Source
	MarketplaceStores Source
}

// Source returns the source of records of the kind on the leg.
func (p Profile) Source(kind models.Kind, leg models.Leg) Source {
	internal := leg == models.LegInternal

	switch {
	case kind == models.KindStocks && internal:
		return p.InternalStocks
	case kind == models.KindStocks:
		return p.MarketplaceStocks
	case kind == models.KindPrices && internal:
		return p.InternalPrices
	case kind == models.KindPrices:
		return p.MarketplacePrices
	case kind == models.KindStores && internal:
		return p.InternalStores
	case kind == models.KindStores:
		return p.MarketplaceStores
	default:
		return Source{Unsupported: fmt.Sprintf("unknown record kind %q", kind)}
	}
}

// Supports returns UnsupportedError when the marketplace doesn't provide the records.
func (p Profile) Supports(kind models.Kind, leg models.Leg) error {
	src := p.Source(kind, leg)
	if src.Supported() {
		return nil
	}

	return &platform.UnsupportedError{
		Marketplace: p.Name,
		Kind:        string(kind),
		Reason:      src.Unsupported,
	}
}

// SourcesFromFeed tells whether marketplace records of the kind come from feed files.
func (p Profile) SourcesFromFeed(kind models.Kind) bool {
	return p.Source(kind, models.LegMarketplace).FromFeed()
}

func (p Profile) sources() map[string]Source {
	return map[string]Source{
		"internal stocks":    p.InternalStocks,
		"internal prices":    p.InternalPrices,
		"internal stores":    p.InternalStores,
		"marketplace stocks": p.MarketplaceStocks,
		"marketplace prices": p.MarketplacePrices,
		"marketplace stores": p.MarketplaceStores,
	}
}

func (p Profile) validate() error {
	for name, src := range p.sources() {
		if !src.Supported() {
			continue
		}
		if err := src.validate(); err != nil {
			return fmt.Errorf("%s %s: %w", p.Name, name, err)
		}
	}

	return nil
}

func (s Source) validate() error {
	if len(s.Layout) == 0 {
		return fmt.Errorf("no layout")
	}
	if s.Period <= 0 && !s.FromFeed() {
		return fmt.Errorf("no period")
	}

	if s.FromFeed() {
		if s.Feed.Account == "" || s.Feed.Pattern == "" {
			return fmt.Errorf("feed without account or pattern")
		}
	} else if len(s.Endpoints) == 0 && len(s.URLPaths) == 0 {
		return fmt.Errorf("no endpoints")
	}

	switch s.Filter {
	case FilterNone:
	case FilterRegion, FilterOrganizationID:
		if s.Fields.Key == "" {
			return fmt.Errorf("%s filter without key field", s.Filter)
		}
	case FilterSecondaryLookup:
		if s.Fields.Key == "" && s.Fields.Store == "" && s.Variant != VariantOzon {
			return fmt.Errorf("%s filter without key field", s.Filter)
		}
	default:
		return fmt.Errorf("unknown filter basis %d", s.Filter)
	}

	return nil
}
