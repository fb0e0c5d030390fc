package profile

import (
	"slices"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/samber/lo"
)

const (
	internalUsername = "puls"
	b2cUsername      = "moduleb2c"
	usernameTemplate = "{marketplace}"

	statusOK       = "200"
	statusAccepted = "202"
	status2xx      = "HTTP 2xx"

	day = 24 * time.Hour
)

// Override changes a baseline profile for one marketplace.
type Override func(p *Profile)

// Registry holds profiles of all known marketplaces.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry composes and validates all marketplace profiles.
func NewRegistry() (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile, len(marketplaces))}

	for name, overrides := range marketplaces {
		p := compose(name, overrides...)
		if err := p.validate(); err != nil {
			return nil, err
		}
		r.profiles[name] = p
	}

	return r, nil
}

// For returns the profile of the marketplace.
func (r *Registry) For(marketplace string) (Profile, error) {
	p, ok := r.profiles[marketplace]
	if !ok {
		return Profile{}, &platform.NotFoundError{Entity: "marketplace", Identifier: marketplace}
	}

	return p, nil
}

// Names returns sorted names of known marketplaces.
func (r *Registry) Names() []string {
	names := lo.Keys(r.profiles)
	slices.Sort(names)

	return names
}

func compose(name string, overrides ...Override) Profile {
	p := baseline(name)
	for _, o := range overrides {
		o(&p)
	}

	if p.StocksInsteadPrices && p.MarketplacePrices.Supported() {
		p.MarketplacePrices = stocksAsPrices(p.MarketplaceStocks)
	}

	return p
}

// baseline is the standard integration: the platform API is polled by the marketplace,
// the internal system pushes stocks and price lists.
func baseline(name string) Profile {
	return Profile{
		Name:                name,
		StocksInsteadPrices: true,
		InternalStocks: Source{
			Direction: models.DirectionInternal,
			Layout:    models.LayoutStock1C,
			Endpoints: []string{"POST {endpoint}/v1/stocks*"},
			Username:  internalUsername,
			Statuses:  []string{statusOK},
			Period:    3 * time.Hour,
			Payload:   models.PayloadResponse,
			Wrapper:   []string{"Data"},
			Fields: Fields{
				Product:    "ProductGuid",
				Quantity:   "Quantity",
				Expiration: "ExpirationDate",
			},
			Filter: FilterNone,
		},
		InternalPrices: Source{
			Variant:   VariantPriceTime,
			Direction: models.DirectionInternal,
			Layout:    models.LayoutPrice1C,
			Endpoints: []string{"*{endpoint}/v1/PriceTime*"},
			Username:  internalUsername,
			Statuses:  []string{statusOK},
			Period:    day,
			Payload:   models.PayloadResponse,
			Wrapper:   []string{"Data"},
			Fields: Fields{
				Product:     "ProductGuid",
				Key:         "PriceTypeGuid",
				PriceType:   "price_type",
				VAT:         "Vat",
				PriceIncVAT: "PriceIncVat",
				PriceWoVAT:  "PriceWoVat",
				PricePromo:  "PricePromo",
			},
			Filter: FilterSecondaryLookup,
			Lookup: models.LookupMarketplacePriceGUID,
			B2C: Channel{
				Endpoint: "*/master-ecom-b2c.puls.ru/api/v1.0/price*",
				Username: b2cUsername,
				Wrapper:  []string{"results"},
			},
		},
		InternalStores: Source{
			Direction: models.DirectionInternal,
			Layout:    models.LayoutStore1C,
			Endpoints: []string{"*{endpoint}/v1/stores/{marketplace_guid}*"},
			Username:  internalUsername,
			Statuses:  []string{statusOK},
			Period:    day,
			Payload:   models.PayloadResponse,
			Wrapper:   []string{"Data"},
			Fields: Fields{
				Store:        "AddressGuid",
				StoreID:      "AddressId",
				Address:      "Address",
				B2BPriceGUID: "PriceTypeB2BGuid",
				// The internal system spells B2С with a cyrillic С.
				B2CPriceGUID: "PriceTypeB2СGuid",
				DeliveryInfo: "DeliveryInfo",
				Deadline:     "OrderDeadlineDate",
				Delivery:     "DeliveryDate",
			},
			Filter: FilterNone,
		},
		MarketplaceStocks: Source{
			Direction: models.DirectionMarketplace,
			Layout:    models.LayoutStockStandard,
			Endpoints: []string{"GET restapi.v1_0.views.StocksView"},
			Username:  usernameTemplate,
			Statuses:  []string{status2xx},
			Period:    time.Hour,
			Payload:   models.PayloadResponse,
			Wrapper:   []string{"results"},
			Fields: Fields{
				Product:    "product_id",
				Quantity:   "quantity",
				Price:      "price",
				Expiration: "expiration_date",
				Key:        "price_type",
			},
			Filter: FilterSecondaryLookup,
			Lookup: models.LookupPriceGUID,
		},
		MarketplaceStores: Source{
			Direction: models.DirectionMarketplace,
			Layout:    models.LayoutStoreStandard,
			Endpoints: []string{"GET restapi.v1_0.views.StoreView"},
			Username:  usernameTemplate,
			Statuses:  []string{status2xx},
			Period:    day,
			Payload:   models.PayloadResponse,
			Wrapper:   []string{"results"},
			Fields: Fields{
				Store:        "pharmacy_id",
				Address:      "address",
				DeliveryInfo: "delivery_info",
				Deadline:     "order_deadline_date",
				Delivery:     "delivery_date",
			},
			Filter: FilterSecondaryLookup,
			Lookup: models.LookupStoreGUID,
		},
	}
}

func stocksAsPrices(stocks Source) Source {
	prices := stocks
	prices.Layout = models.LayoutPriceStandard
	prices.Period = day

	return prices
}

func unsupported(reason string) Source {
	return Source{Unsupported: reason}
}

func clientStocks(endpoint, tag string, period time.Duration, wrapper []string, product string) Source {
	return Source{
		Direction: models.DirectionClient,
		Layout:    models.LayoutStockClient,
		Stream:    logquery.StreamClient,
		Endpoints: []string{endpoint},
		Tag:       tag,
		Period:    period,
		Payload:   models.PayloadMessage,
		Wrapper:   wrapper,
		Fields: Fields{
			Product:  product,
			Quantity: "quantity",
		},
		Filter: FilterNone,
	}
}

func feed(account, pattern, linkPrefix string) *Feed {
	return lo.ToPtr(Feed{
		Account:    account,
		Dir:        "feeds",
		Pattern:    pattern,
		LinkPrefix: linkPrefix,
	})
}
