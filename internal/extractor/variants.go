package extractor

import (
	"encoding/json"
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/MichalMitros/ecom-reconciler/internal/decoder"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/samber/lo"
)

var (
	uuidPattern   = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	outletPattern = regexp.MustCompile(`/outlets/(\d+)\.json`)
)

// Yandex stock payload shapes.
var (
	yandexPushFields = profile.Fields{Product: "sku", Quantity: "items.0.count"}
	yandexCartFields = profile.Fields{Product: "offerId", Quantity: "count"}
)

const (
	yandexPushEndpoint = "push /stocks"
	yandexCartEndpoint = "/cart"
)

// offerFields maps offer attributes of XML feeds.
var offerFields = profile.Fields{Product: "id", Price: "price", Quantity: "count"}

// element is one payload element with the attributes its variant derives from the document.
type element struct {
	values map[string]any
	fields profile.Fields

	// key overrides the key field when the variant derives it from the document.
	key      string
	errors   string
	endpoint string
	b2cUsed  *bool
	method   string
	outlet   string
}

func (el element) text(path string) string {
	if path == "" {
		return ""
	}

	v, _ := decoder.Field(el.values, decoder.Path(path)...)

	return decoder.Text(v)
}

func (el element) product() string {
	return el.text(el.fields.Product)
}

func (x *Extraction[T]) elements(doc models.Document) iter.Seq2[element, error] {
	switch x.Source.Variant {
	case profile.VariantPriceTime:
		return x.priceTimeElements(doc)
	case profile.VariantEaptekaErrors:
		return x.eaptekaElements(doc)
	case profile.VariantOzon:
		return x.ozonElements(doc)
	case profile.VariantYandexStocks:
		return x.yandexStockElements(doc)
	case profile.VariantYandexStores:
		return x.yandexStoreElements(doc)
	default:
		return x.standardElements(doc)
	}
}

func (x *Extraction[T]) feedElements(feed *models.Feed) iter.Seq2[element, error] {
	if x.Source.Variant == profile.VariantFeedOffers {
		return func(yield func(element, error) bool) {
			for offer, err := range x.decoder.Offers(feed.Body) {
				if err != nil {
					yield(element{}, err)
					return
				}
				el := element{
					values: map[string]any{
						"id":    offer.ID,
						"name":  offer.Name,
						"price": offer.Price,
						"count": offer.Count,
					},
					fields: offerFields,
				}
				if !yield(el, nil) {
					return
				}
			}
		}
	}

	return wrap(x.decoder.Array(feed.Body, x.Source.Wrapper...), x.Source.Fields)
}

func (x *Extraction[T]) standardElements(doc models.Document) iter.Seq2[element, error] {
	payload, ok := doc.Payload(x.Source.Payload)
	if !ok {
		return failed(fmt.Errorf("%w: no payload", platform.ErrMalformedPayload))
	}

	return wrap(x.decode(payload, x.Source.Wrapper), x.Source.Fields)
}

func (x *Extraction[T]) decode(payload string, wrapper []string) iter.Seq2[map[string]any, error] {
	if x.Source.Streaming {
		return x.decoder.Array(strings.NewReader(payload), wrapper...)
	}

	return x.decoder.Elements(payload, wrapper...)
}

// priceTimeElements reads price lists of the internal system or the b2c module.
func (x *Extraction[T]) priceTimeElements(doc models.Document) iter.Seq2[element, error] {
	payload, ok := doc.Payload(x.Source.Payload)
	if !ok {
		return failed(fmt.Errorf("%w: no payload", platform.ErrMalformedPayload))
	}

	b2c := x.origin.isB2C(x.Source, doc)
	wrapper := x.Source.Wrapper
	if b2c {
		wrapper = x.Source.B2C.Wrapper
	}

	var key string
	if b2c || x.Source.PriceGUIDFromName {
		key = lastUUID(doc.TransactionName)
	} else if request, ok := doc.Payload(models.PayloadRequest); ok {
		key = requestField(request, x.Source.Fields.Key)
	}

	return func(yield func(element, error) bool) {
		for values, err := range x.decode(payload, wrapper) {
			el := element{values: values, fields: x.Source.Fields, key: key, b2cUsed: lo.ToPtr(b2c)}
			if !yield(el, err) {
				return
			}
		}
	}
}

// eaptekaElements reads request elements and attaches the first response error mentioning the product.
func (x *Extraction[T]) eaptekaElements(doc models.Document) iter.Seq2[element, error] {
	payload, ok := doc.Payload(x.Source.Payload)
	if !ok {
		return failed(fmt.Errorf("%w: no payload", platform.ErrMalformedPayload))
	}

	var errs []string
	if response, ok := doc.Payload(models.PayloadResponse); ok {
		var body struct {
			Errors []string `json:"errors"`
		}
		if err := json.Unmarshal([]byte(response), &body); err != nil {
			return failed(fmt.Errorf("%w: can't read errors: %w", platform.ErrMalformedPayload, err))
		}
		errs = body.Errors
	}

	return func(yield func(element, error) bool) {
		for values, err := range x.decode(payload, x.Source.Wrapper) {
			el := element{values: values, fields: x.Source.Fields}
			if err == nil {
				code := el.product()
				el.errors, _ = lo.Find(errs, func(e string) bool { return code != "" && strings.Contains(e, code) })
			}
			if !yield(el, err) {
				return
			}
		}
	}
}

// ozonElements pairs request elements with response results by position.
func (x *Extraction[T]) ozonElements(doc models.Document) iter.Seq2[element, error] {
	request, ok := doc.Payload(models.PayloadRequest)
	if !ok {
		return failed(fmt.Errorf("%w: no request", platform.ErrMalformedPayload))
	}
	response, ok := doc.Payload(models.PayloadResponse)
	if !ok {
		return failed(fmt.Errorf("%w: no response", platform.ErrMalformedPayload))
	}

	requested, err := collect(x.decoder.Elements(request, x.Source.Wrapper...))
	if err != nil {
		return failed(err)
	}
	results, err := collect(x.decoder.Elements(response, x.Source.ResultWrapper...))
	if err != nil {
		return failed(err)
	}
	if len(requested) != len(results) {
		return failed(fmt.Errorf("%w: %d requested elements, %d results", platform.ErrMalformedPayload, len(requested), len(results)))
	}

	return func(yield func(element, error) bool) {
		for ix := range results {
			values := make(map[string]any, len(results[ix])+len(requested[ix]))
			for k, v := range results[ix] {
				values[k] = v
			}
			for k, v := range requested[ix] {
				if _, ok := values[k]; !ok {
					values[k] = v
				}
			}
			if q, ok := requested[ix][x.Source.Fields.Quantity]; ok {
				values[x.Source.Fields.Quantity] = q
			}
			if p, ok := requested[ix][x.Source.Fields.Price]; ok {
				values[x.Source.Fields.Price] = p
			}

			el := element{values: values, fields: x.Source.Fields, key: doc.PriceType}
			el.errors = el.text(x.Source.Fields.Errors)
			if !yield(el, nil) {
				return
			}
		}
	}
}

// yandexStockElements reads stock pushes from requests and cart items from responses of cart calls.
func (x *Extraction[T]) yandexStockElements(doc models.Document) iter.Seq2[element, error] {
	if request, ok := doc.Payload(models.PayloadRequest); ok && request != "null" {
		return func(yield func(element, error) bool) {
			for values, err := range x.decode(request, x.Source.Wrapper) {
				if !yield(element{values: values, fields: yandexPushFields, endpoint: yandexPushEndpoint}, err) {
					return
				}
			}
		}
	}

	response, ok := doc.Payload(models.PayloadResponse)
	if !ok {
		return failed(fmt.Errorf("%w: no request or response", platform.ErrMalformedPayload))
	}

	return func(yield func(element, error) bool) {
		for values, err := range x.decode(response, x.Source.ResultWrapper) {
			el := element{values: values, fields: yandexCartFields, endpoint: yandexCartEndpoint}
			if err == nil {
				el.key = el.text("feedId")
			}
			if !yield(el, err) {
				return
			}
		}
	}
}

// yandexStoreElements turns one outlet call into one element.
func (x *Extraction[T]) yandexStoreElements(doc models.Document) iter.Seq2[element, error] {
	el := element{
		values: map[string]any{},
		fields: x.Source.Fields,
		method: strings.SplitN(doc.TransactionName, " ", 2)[0],
	}
	if m := outletPattern.FindStringSubmatch(doc.TransactionName); m != nil {
		el.outlet = m[1]
	}

	return func(yield func(element, error) bool) {
		request, ok := doc.Payload(x.Source.Payload)
		if ok && request != "null" {
			for values, err := range x.decoder.Elements(request) {
				if err != nil {
					yield(element{}, err)
					return
				}
				el.values = values
			}
		}
		yield(el, nil)
	}
}

// accepts tells whether the element matches the requested product and store.
func (x *Extraction[T]) accepts(el element) bool {
	if len(x.products) > 0 && el.fields.Product != "" && !containsFold(x.products, el.product()) {
		return false
	}

	if len(x.stores) > 0 && el.fields.Store != "" && !containsFold(x.stores, el.text(el.fields.Store)) {
		return false
	}

	return true
}

func containsFold(values []string, value string) bool {
	return lo.ContainsBy(values, func(v string) bool { return strings.EqualFold(v, value) })
}

// lastUUID returns the last GUID shaped token of the transaction name.
func lastUUID(name string) string {
	matches := uuidPattern.FindAllString(name, -1)
	if len(matches) == 0 {
		return ""
	}

	return strings.ToLower(matches[len(matches)-1])
}

func requestField(request, path string) string {
	var root any
	if err := json.Unmarshal([]byte(request), &root); err != nil {
		return ""
	}
	v, _ := decoder.Field(root, decoder.Path(path)...)

	return decoder.Text(v)
}

func wrap(values iter.Seq2[map[string]any, error], fields profile.Fields) iter.Seq2[element, error] {
	return func(yield func(element, error) bool) {
		for v, err := range values {
			if !yield(element{values: v, fields: fields}, err) {
				return
			}
		}
	}
}

func failed(err error) iter.Seq2[element, error] {
	return func(yield func(element, error) bool) {
		yield(element{}, err)
	}
}

// collect reads all elements, the first error fails the whole payload.
func collect(values iter.Seq2[map[string]any, error]) ([]map[string]any, error) {
	var all []map[string]any
	for v, err := range values {
		if err != nil {
			return nil, err
		}
		all = append(all, v)
	}

	return all, nil
}
