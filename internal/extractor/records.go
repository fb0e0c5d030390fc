package extractor

import (
	"strconv"
	"strings"

	"github.com/MichalMitros/ecom-reconciler/internal/decoder"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/shopspring/decimal"
)

const (
	addressLimit  = 50
	scheduleLimit = 3
)

func (x *Extraction[T]) stock(el element, base models.Base) *models.StockRecord {
	key := x.key(el)
	base.MatchKey = key

	s := &models.StockRecord{
		Base:           base,
		Quantity:       amount(el.text(el.fields.Quantity)),
		ProductID:      x.productID(el),
		ExpirationDate: el.text(el.fields.Expiration),
		Price:          amount(el.text(el.fields.Price)),
		PriceGUID:      key,
		PriceType:      el.text(el.fields.PriceType),
		Errors:         el.errorText(),
		Operation:      el.text(el.fields.Operation),
		AddressGUID:    el.text(el.fields.AddressGUID),
		Endpoint:       el.endpoint,
	}
	if x.Source.Filter == profile.FilterRegion {
		s.Region = key
	}

	return s
}

func (x *Extraction[T]) price(el element, base models.Base) *models.PriceRecord {
	key := x.key(el)
	base.MatchKey = key

	p := &models.PriceRecord{
		Base:           base,
		ProductID:      x.productID(el),
		Price:          amount(el.text(el.fields.Price)),
		PriceGUID:      key,
		PriceType:      el.text(el.fields.PriceType),
		Quantity:       amount(el.text(el.fields.Quantity)),
		ExpirationDate: el.text(el.fields.Expiration),
		VAT:            el.text(el.fields.VAT),
		B2CUsed:        el.b2cUsed,
		PriceIncVAT:    amount(el.text(el.fields.PriceIncVAT)),
		PriceWoVAT:     amount(el.text(el.fields.PriceWoVAT)),
		PricePromo:     amount(el.text(el.fields.PricePromo)),
		PriceB2C:       amount(el.text(el.fields.PriceB2C)),
		PriceB2B:       amount(el.text(el.fields.PriceB2B)),
		VATB2B:         el.text(el.fields.VATB2B),
		Errors:         el.errorText(),
	}
	if x.Source.Filter == profile.FilterRegion {
		p.Region = key
	}

	return p
}

func (x *Extraction[T]) store(el element, base models.Base) *models.StoreRecord {
	base.MatchKey = x.key(el)

	s := &models.StoreRecord{
		Base:          base,
		StoreGUID:     el.text(el.fields.Store),
		StoreID:       el.text(el.fields.StoreID),
		Address:       el.text(el.fields.Address),
		Schedule:      schedule(el),
		B2BPriceGUID:  el.text(el.fields.B2BPriceGUID),
		B2CPriceGUID:  el.text(el.fields.B2CPriceGUID),
		Method:        el.method,
		Visibility:    el.text(el.fields.Visibility),
		DeliveryRules: el.text(el.fields.DeliveryRules),
		Outlet:        el.outlet,
	}
	if x.Source.Variant == profile.VariantStandard && !x.Source.FromFeed() {
		s.Address = shorten(s.Address)
	}

	return s
}

// key returns the value the filter basis matches records by.
// missingRegion stands for a record region that is absent or not a number.
const missingRegion = "-1"

func (x *Extraction[T]) key(el element) string {
	key := el.key
	switch {
	case key != "":
	case el.fields.Key != "":
		key = el.text(el.fields.Key)
	case x.Kind == models.KindStores:
		key = el.text(el.fields.Store)
	}

	if x.Source.Filter == profile.FilterRegion && x.Source.CheckNoneRegions {
		if _, err := strconv.Atoi(key); err != nil {
			key = missingRegion
		}
	}

	return key
}

func (x *Extraction[T]) productID(el element) string {
	id := el.product()
	if x.Source.QuoteProduct && id != "" {
		return `"` + id + `"`
	}

	return id
}

func (el element) errorText() string {
	if el.errors != "" {
		return el.errors
	}

	return el.text(el.fields.Errors)
}

// schedule reads up to three delivery windows.
func schedule(el element) [scheduleLimit]models.Delivery {
	var windows [scheduleLimit]models.Delivery
	if el.fields.DeliveryInfo == "" {
		return windows
	}

	raw, _ := decoder.Field(el.values, decoder.Path(el.fields.DeliveryInfo)...)
	items, ok := raw.([]any)
	if !ok {
		return windows
	}

	for ix := 0; ix < len(items) && ix < scheduleLimit; ix++ {
		windows[ix] = models.Delivery{
			Deadline: textAt(items[ix], el.fields.Deadline),
			Date:     textAt(items[ix], el.fields.Delivery),
		}
	}

	return windows
}

func textAt(v any, path string) string {
	if path == "" {
		return ""
	}
	field, _ := decoder.Field(v, decoder.Path(path)...)

	return decoder.Text(field)
}

// amount parses a payload number, anything else is no amount.
func amount(text string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}

// shorten cuts the address to its first characters.
func shorten(address string) string {
	runes := []rune(address)
	if len(runes) > addressLimit {
		runes = runes[:addressLimit]
	}

	return string(runes) + "..."
}
