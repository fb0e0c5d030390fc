package profile

import (
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
)

// Feed server accounts.
const (
	FeedAccountSbermm = "sbermm"
	FeedAccountYandex = "yandex"
)

const (
	sbermmFeedLink = "https://ftp.puls.ru/feeds2sber/feeds/"
	yandexFeedLink = "https://ftp.puls.ru/feeds2yandex/feeds/"
)

var marketplaces = map[string][]Override{
	// standard integrations
	"aloe":        {aloe},
	"analitfarm":  nil,
	"artes":       nil,
	"apteka_mos":  {aptekamos},
	"cva":         nil,
	"farmeconom":  nil,
	"garmoniya":   nil,
	"okapteka":    nil,
	"planetazd":   nil,
	"vapteke":     nil,
	"zdravservis": nil,

	// semi standard integrations
	"apteka36_6":  {apteka366},
	"aptekaforte": {aptekaforte},
	"asnaru":      {asnaru},
	"eapteka":     {eapteka},
	"farmiya":     {farmiya},
	"mailru":      nil,
	"nevis":       nil,
	"sozvezdie":   {sozvezdie},
	"uteka":       {uteka},

	// non standard integrations
	"ozonrfbs":  {ozonrfbs},
	"sbermm":    {sbermm},
	"yandexdbs": {yandexdbs},

	// client side stream
	"ec_uteka": {ecUteka},
}

func aloe(p *Profile) {
	p.MarketplaceStocks.Period = 6 * time.Minute
}

func farmiya(p *Profile) {
	p.MarketplaceStocks.Fields.Product = "productId"
	p.MarketplaceStocks.Fields.Expiration = "expirationDate"

	p.MarketplaceStores.Fields.Store = "pharmacyId"
	p.MarketplaceStores.Fields.DeliveryInfo = "deliveryinfo"
	p.MarketplaceStores.Fields.Deadline = "orderdeadlinedate"
	p.MarketplaceStores.Fields.Delivery = "deliverydate"
}

func uteka(p *Profile) {
	p.MarketplaceStocks.Fields.Product = "productId"
	p.MarketplaceStocks.Fields.Expiration = "expirationDate"
	p.MarketplaceStocks.Fields.Key = "region"

	pascalCaseDelivery(&p.MarketplaceStores)
}

func sozvezdie(p *Profile) {
	stocks := &p.MarketplaceStocks
	stocks.Fields.Product = "product_code"
	stocks.Fields.Expiration = "expirationDate"
	stocks.Fields.Key = "organization_id"
	stocks.Filter = FilterOrganizationID
	stocks.Payload = models.PayloadRequest
	stocks.Wrapper = nil
	// The logged endpoint carries an api key in the query string.
	stocks.Endpoints = []string{"POST https://api.partners.esc.ru/1_0/stock_changes*"}
	stocks.Statuses = []string{statusOK}

	p.MarketplaceStores.Fields.Store = "id"
}

func apteka366(p *Profile) {
	stocks := &p.MarketplaceStocks
	stocks.Fields.Product = "productId"
	stocks.Fields.Expiration = "expirationDate"
	stocks.Fields.Key = "region"
	stocks.Filter = FilterRegion

	p.MarketplacePrices = unsupported("ecom does not pass prices to apteka36_6")

	pascalCaseDelivery(&p.MarketplaceStores)
	p.MarketplaceStores.Lookup = models.LookupStoreID
}

func aptekaforte(p *Profile) {
	p.StocksInsteadPrices = false
	p.ModuleB2C = true
	p.InternalPrices.PriceGUIDFromName = true

	stocks := &p.MarketplaceStocks
	stocks.Fields.Expiration = ""
	stocks.Fields.Key = "region"
	stocks.Filter = FilterRegion
	stocks.CheckNoneRegions = true
	stocks.Payload = models.PayloadRequest
	stocks.Wrapper = nil
	stocks.Endpoints = []string{"POST http://esb.production.puls.local/services/api/products/stocks"}
	stocks.Statuses = []string{statusAccepted}

	prices := stocksAsPrices(*stocks)
	prices.Endpoints = []string{"*POST*/services/api/products/prices*"}
	prices.Streaming = true
	p.MarketplacePrices = prices

	p.MarketplaceStores = unsupported("ecom does not pass stores to aptekaforte")
}

func eapteka(p *Profile) {
	p.StocksInsteadPrices = false

	stocks := &p.MarketplaceStocks
	stocks.Variant = VariantEaptekaErrors
	stocks.Layout = models.LayoutStockEapteka
	stocks.Endpoints = []string{"*POST*apipartners.eapteka.ru/1_0/stock_changes*"}
	stocks.Statuses = []string{statusOK}
	stocks.Payload = models.PayloadRequest
	stocks.Wrapper = nil
	stocks.Fields = Fields{
		Product:  "product_code",
		Quantity: "quantity",
		Key:      "region",
		Errors:   "errors",
	}
	// Eapteka elements carry the region code in place of a price list.
	stocks.Filter = FilterRegion

	prices := &p.MarketplacePrices
	*prices = stocksAsPrices(p.MarketplaceStocks)
	prices.Variant = VariantStandard
	prices.Endpoints = []string{"*apipartners.eapteka.ru/1_0/price_changes*"}
	prices.Streaming = true
	prices.Fields = Fields{
		Product: "product_code",
		Price:   "price",
		Key:     "region",
	}

	stores := &p.MarketplaceStores
	pascalCaseDelivery(stores)
	stores.Fields.Store = "id"
	stores.Endpoints = []string{"*GET*apipartners.eapteka.ru/1_0/stores*"}
	stores.Wrapper = nil
	stores.Lookup = models.LookupMarketplaceStoreGUID
}

func asnaru(p *Profile) {
	p.StocksInsteadPrices = false
	p.ModuleB2C = true

	stocks := &p.MarketplaceStocks
	stocks.Fields.Key = "region"
	stocks.Filter = FilterRegion
	stocks.Payload = models.PayloadRequest
	stocks.Wrapper = nil
	stocks.Endpoints = []string{"POST*asna.ru/ws/puls/v1.0/stock_changes_async*"}
	stocks.Statuses = []string{statusOK}

	p.MarketplacePrices = Source{
		Direction: models.DirectionMarketplace,
		Layout:    models.LayoutPriceAsnaru,
		Endpoints: []string{"*asna.ru/ws/puls/v1.0/price_changes_async*"},
		Username:  usernameTemplate,
		Statuses:  []string{statusOK},
		Period:    day,
		Payload:   models.PayloadRequest,
		Streaming: true,
		Fields: Fields{
			Product:    "product_id",
			Expiration: "expiration_date",
			Key:        "region",
			PriceB2C:   "price_b2c",
			PriceB2B:   "price_b2b",
			VATB2B:     "vat_b2b",
		},
		Filter: FilterRegion,
	}

	stores := &p.MarketplaceStores
	stores.Fields.Store = "id"
	stores.Endpoints = []string{"GET*asna.ru/ws/puls/v1.0/stores*"}
	stores.Statuses = []string{statusOK}
	stores.Lookup = models.LookupMarketplaceStoreGUID
}

func aptekamos(p *Profile) {
	p.StocksInsteadPrices = false

	stocks := &p.MarketplaceStocks
	stocks.Layout = models.LayoutStockAptekamos
	stocks.Endpoints = []string{"POST https://api.aptekamos.ru/Price/WPrice/WimportPrices"}
	stocks.Statuses = []string{statusOK}
	stocks.Payload = models.PayloadRequest
	stocks.Wrapper = []string{"prices"}
	stocks.QuoteProduct = true
	stocks.Fields = Fields{
		Product:     "item_id",
		Quantity:    "qtty",
		Price:       "price",
		Operation:   "operation",
		AddressGUID: "org_chenum",
		Key:         "org_chenum",
	}
	stocks.Lookup = models.LookupStoreGUID

	p.MarketplacePrices = unsupported("ecom does not pass prices to apteka_mos")
	p.MarketplaceStores = unsupported("ecom does not pass stores to apteka_mos")
}

func ozonrfbs(p *Profile) {
	p.StocksInsteadPrices = false

	stocks := &p.MarketplaceStocks
	stocks.Variant = VariantOzon
	stocks.Layout = models.LayoutStockOzon
	stocks.Endpoints = []string{"POST https://api-seller.ozon.ru/v2/products/stocks"}
	stocks.Statuses = []string{statusOK}
	stocks.Payload = models.PayloadRequest
	stocks.Wrapper = []string{"stocks"}
	stocks.ResultWrapper = []string{"result"}
	stocks.QuoteProduct = true
	stocks.Fields = Fields{
		Product:  "offer_id",
		Quantity: "stock",
		Errors:   "errors",
	}

	prices := &p.MarketplacePrices
	*prices = stocksAsPrices(*stocks)
	prices.Layout = models.LayoutPriceOzon
	prices.Endpoints = []string{"POST https://api-seller.ozon.ru/v1/product/import/prices"}
	prices.Wrapper = []string{"prices"}
	prices.Fields = Fields{
		Product: "offer_id",
		Price:   "price",
		Errors:  "errors",
	}

	stores := &p.MarketplaceStores
	stores.Fields.Store = "pharmacyId"
	stores.Fields.Deadline = "deliverydate_min"
	stores.Fields.Delivery = "deliverydate_max"
}

func sbermm(p *Profile) {
	p.StocksInsteadPrices = false

	p.MarketplaceStocks = Source{
		Variant:   VariantFeedArray,
		Direction: models.DirectionMarketplace,
		Layout:    models.LayoutStockSbermm,
		Feed:      feed(FeedAccountSbermm, "{sbermm_campaign_id}_stocks_full*", sbermmFeedLink),
		Wrapper:   []string{"outlets", "0", "offers"},
		Streaming: true,
		Fields: Fields{
			Product:  "offerId",
			Quantity: "quantity",
			Price:    "price",
		},
		Filter: FilterNone,
	}

	p.MarketplacePrices = Source{
		Variant:   VariantFeedOffers,
		Direction: models.DirectionMarketplace,
		Layout:    models.LayoutPriceSbermm,
		Feed:      feed(FeedAccountSbermm, "{sbermm_campaign_id}.xml", sbermmFeedLink),
		Filter:    FilterNone,
	}

	p.MarketplaceStores = Source{
		Variant:   VariantFeedArray,
		Direction: models.DirectionMarketplace,
		Layout:    models.LayoutStoreSbermm,
		Feed:      feed(FeedAccountSbermm, "{sbermm_campaign_id}_outlets*", sbermmFeedLink),
		Wrapper:   []string{"outlets"},
		Streaming: true,
		Fields: Fields{
			Store:   "identification.id",
			Address: "location.address.plain",
		},
		Filter: FilterNone,
	}
}

func yandexdbs(p *Profile) {
	p.StocksInsteadPrices = false
	p.ModuleB2C = true

	p.MarketplacePrices = Source{
		Variant:      VariantFeedOffers,
		Direction:    models.DirectionMarketplace,
		Layout:       models.LayoutPriceYandex,
		Feed:         feed(FeedAccountYandex, "{campaign_id}.yml", yandexFeedLink),
		QuoteProduct: true,
		Filter:       FilterNone,
	}

	p.MarketplaceStocks = Source{
		Variant:   VariantYandexStocks,
		Direction: models.DirectionMarketplace,
		Layout:    models.LayoutStockYandex,
		Endpoints: []string{"PUT https://api.partner.market.yandex.ru/v2/campaigns/{campaign_id}/offers/stocks.json"},
		URLPaths:  []string{"/v1.0/yandex/{latin_name}/cart"},
		Username:  usernameTemplate,
		Statuses:  []string{statusOK, status2xx},
		Period:    3 * time.Hour,
		Payload:   models.PayloadRequest,
		Wrapper:   []string{"skus"},
		// Cart responses are read when a document has no request.
		ResultWrapper: []string{"cart", "items"},
		QuoteProduct:  true,
		Filter:        FilterNone,
	}

	outlet := "https://api.partner.market.yandex.ru/v2/campaigns/{campaign_id}/outlets/{outlet}.json"
	p.MarketplaceStores = Source{
		Variant:   VariantYandexStores,
		Direction: models.DirectionMarketplace,
		Layout:    models.LayoutStoreYandex,
		Endpoints: []string{"POST " + outlet, "PUT " + outlet, "DELETE " + outlet},
		Username:  usernameTemplate,
		Statuses:  []string{statusOK},
		Period:    day,
		Payload:   models.PayloadRequest,
		Fields: Fields{
			Address:       "address.street",
			Visibility:    "visibility",
			DeliveryRules: "deliveryRules",
		},
		Filter: FilterNone,
	}
}

func ecUteka(p *Profile) {
	p.StocksInsteadPrices = false
	p.Verbatim = true

	p.InternalStocks = clientStocks("/v1.1/pharmacies/{store}/stocks", logquery.TagRequest, 30*day, nil, "product_id")
	p.MarketplaceStocks = clientStocks(
		"/v1.0/stocks?storeId={store}&page=0&size=10000", logquery.TagResponse, 7*day, []string{"results"}, "productId",
	)

	p.InternalPrices = unsupported("prices are not logged by the client side stream")
	p.MarketplacePrices = unsupported("prices are not logged by the client side stream")
	p.InternalStores = unsupported("stores are not logged by the client side stream")
	p.MarketplaceStores = unsupported("stores are not logged by the client side stream")
}

// pascalCaseDelivery switches store fields to integrations answering in pascal case.
func pascalCaseDelivery(stores *Source) {
	stores.Fields.Store = "pharmacyId"
	stores.Fields.DeliveryInfo = "DeliveryInfo"
	stores.Fields.Deadline = "OrderDeadlineDate"
	stores.Fields.Delivery = "DeliveryDate"
}
