package models

// Direction tags the leg of the pipeline a record was observed on.
type Direction string

const (
	// DirectionInternal marks documents sent by the internal system to the platform.
	DirectionInternal Direction = "->e  "
	// DirectionMarketplace marks documents sent by the platform to a marketplace.
	DirectionMarketplace Direction = "  e->"
	// DirectionClient marks documents of the client-side log stream.
	DirectionClient Direction = "->ec  "
)

// Kind is a reconciled record kind.
type Kind string

const (
	KindStocks Kind = "stocks"
	KindPrices Kind = "prices"
	KindStores Kind = "stores"
)

// Leg is one side of the reconciliation.
type Leg string

const (
	// LegInternal is the internal system to platform leg.
	LegInternal Leg = "1c"
	// LegMarketplace is the platform to marketplace leg.
	LegMarketplace Leg = "mp"
)

// PayloadLocation selects the document field holding the payload.
type PayloadLocation int

const (
	PayloadResponse PayloadLocation = iota
	PayloadRequest
	PayloadRequestBody
	PayloadMessage
)

// Document is a single matched log store entry.
type Document struct {
	Index           string
	ID              string
	Timestamp       string
	TransactionName string
	Result          string
	Username        string
	URLPath         string
	MarketplaceGUID string
	PriceType       string
	Request         *string
	RequestBody     *string
	Response        *string
	Message         *string
	Link            string
}

// Payload returns the serialized payload stored at the location.
func (d Document) Payload(location PayloadLocation) (string, bool) {
	var p *string
	switch location {
	case PayloadResponse:
		p = d.Response
	case PayloadRequest:
		p = d.Request
	case PayloadRequestBody:
		p = d.RequestBody
	case PayloadMessage:
		p = d.Message
	}

	if p == nil {
		return "", false
	}

	return *p, true
}

// SearchResult is the outcome of one log store query.
type SearchResult struct {
	// Total is the number of hits the log store matched, it may exceed len(Documents).
	Total     int
	Documents []Document
}

// Truncated tells whether the log store matched more hits than it returned.
func (r *SearchResult) Truncated() bool {
	return r.Total > len(r.Documents)
}
