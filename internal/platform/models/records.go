package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Report columns.
const (
	ColumnDirection     = "direction"
	ColumnDatetime      = "datetime"
	ColumnOrgName       = "org_name"
	ColumnQuantity      = "quantity"
	ColumnProduct       = "product_identifier"
	ColumnExpiration    = "expiration_date"
	ColumnPrice         = "price"
	ColumnPriceGUID     = "price_guid"
	ColumnRegion        = "region"
	ColumnPriceType     = "price_type"
	ColumnErrors        = "errors"
	ColumnOperation     = "operation"
	ColumnAddressGUID   = "org_address_guid"
	ColumnEndpoint      = "endpoint"
	ColumnVAT           = "vat"
	ColumnB2CUsed       = "b2c_used"
	ColumnPriceIncVAT   = "price_inc_vat"
	ColumnPriceWoVAT    = "price_wo_vat"
	ColumnPricePromo    = "price_promo"
	ColumnPriceB2C      = "price_b2c"
	ColumnPriceB2B      = "price_b2b"
	ColumnVATB2B        = "vat_b2b"
	ColumnStoreGUID     = "store_guid"
	ColumnStoreID       = "store_id"
	ColumnAddress       = "address"
	ColumnDeadline1     = "deadline_date1"
	ColumnDelivery1     = "delivery_date1"
	ColumnDeadline2     = "deadline_date2"
	ColumnDelivery2     = "delivery_date2"
	ColumnDeadline3     = "deadline_date3"
	ColumnDelivery3     = "delivery_date3"
	ColumnB2BPriceGUID  = "b2b_price_guid"
	ColumnB2CPriceGUID  = "b2c_price_guid"
	ColumnMethod        = "method_name"
	ColumnVisibility    = "visibility"
	ColumnDeliveryRules = "delivery_rules"
	ColumnOutlet        = "outlet"
	ColumnLink          = "hit_link"
)

// DatetimeLayout is the layout of the datetime column.
const DatetimeLayout = "2006-01-02 15:04:05.000"

// Record is a single row of a reconciliation report.
type Record interface {
	Timestamp() time.Time
	Value(column string) string
}

// Keyed is a record that can be matched against an organization.
type Keyed interface {
	Record
	Key() string
	Organization() string
	SetOwner(owner Owner)
}

// Base holds the attributes shared by all records.
type Base struct {
	Direction Direction
	// Time is the event time in platform-local time.
	Time    time.Time
	OrgName string
	Link    string
	// MatchKey is the value matched against the resolved identity during enrichment.
	MatchKey string
}

func (b *Base) Timestamp() time.Time {
	return b.Time
}

func (b *Base) Key() string {
	return b.MatchKey
}

func (b *Base) Organization() string {
	return b.OrgName
}

func (b *Base) SetOwner(owner Owner) {
	b.OrgName = owner.Organization
}

func (b *Base) value(column string) (string, bool) {
	switch column {
	case ColumnDirection:
		return string(b.Direction), true
	case ColumnDatetime:
		return b.Time.Format(DatetimeLayout), true
	case ColumnOrgName:
		return b.OrgName, true
	case ColumnLink:
		return b.Link, true
	default:
		return "", false
	}
}

// StockRecord is a stock level observed in a payload or a feed.
type StockRecord struct {
	Base
	Quantity       decimal.NullDecimal
	ProductID      string
	ExpirationDate string
	Price          decimal.NullDecimal
	PriceGUID      string
	PriceType      string
	Region         string
	Errors         string
	Operation      string
	AddressGUID    string
	Endpoint       string
}

func (s *StockRecord) SetOwner(owner Owner) {
	s.Base.SetOwner(owner)
	if owner.PriceType != nil {
		s.PriceType = *owner.PriceType
	}
}

func (s *StockRecord) Value(column string) string {
	if v, ok := s.Base.value(column); ok {
		return v
	}

	switch column {
	case ColumnQuantity:
		return formatDecimal(s.Quantity)
	case ColumnProduct:
		return s.ProductID
	case ColumnExpiration:
		return s.ExpirationDate
	case ColumnPrice:
		return formatDecimal(s.Price)
	case ColumnPriceGUID:
		return s.PriceGUID
	case ColumnPriceType:
		return s.PriceType
	case ColumnRegion:
		return s.Region
	case ColumnErrors:
		return s.Errors
	case ColumnOperation:
		return s.Operation
	case ColumnAddressGUID:
		return s.AddressGUID
	case ColumnEndpoint:
		return s.Endpoint
	default:
		return ""
	}
}

// PriceRecord is a price observed in a payload or a feed.
type PriceRecord struct {
	Base
	ProductID      string
	Price          decimal.NullDecimal
	PriceGUID      string
	PriceType      string
	Region         string
	Quantity       decimal.NullDecimal
	ExpirationDate string
	VAT            string
	B2CUsed        *bool
	PriceIncVAT    decimal.NullDecimal
	PriceWoVAT     decimal.NullDecimal
	PricePromo     decimal.NullDecimal
	PriceB2C       decimal.NullDecimal
	PriceB2B       decimal.NullDecimal
	VATB2B         string
	Errors         string
}

func (p *PriceRecord) SetOwner(owner Owner) {
	p.Base.SetOwner(owner)
	if owner.PriceType != nil {
		p.PriceType = *owner.PriceType
	}
}

func (p *PriceRecord) Value(column string) string {
	if v, ok := p.Base.value(column); ok {
		return v
	}

	switch column {
	case ColumnProduct:
		return p.ProductID
	case ColumnPrice:
		return formatDecimal(p.Price)
	case ColumnPriceGUID:
		return p.PriceGUID
	case ColumnPriceType:
		return p.PriceType
	case ColumnRegion:
		return p.Region
	case ColumnQuantity:
		return formatDecimal(p.Quantity)
	case ColumnExpiration:
		return p.ExpirationDate
	case ColumnVAT:
		return p.VAT
	case ColumnB2CUsed:
		if p.B2CUsed == nil {
			return ""
		}
		return strconv.FormatBool(*p.B2CUsed)
	case ColumnPriceIncVAT:
		return formatDecimal(p.PriceIncVAT)
	case ColumnPriceWoVAT:
		return formatDecimal(p.PriceWoVAT)
	case ColumnPricePromo:
		return formatDecimal(p.PricePromo)
	case ColumnPriceB2C:
		return formatDecimal(p.PriceB2C)
	case ColumnPriceB2B:
		return formatDecimal(p.PriceB2B)
	case ColumnVATB2B:
		return p.VATB2B
	case ColumnErrors:
		return p.Errors
	default:
		return ""
	}
}

// Delivery is one delivery schedule window of a store.
type Delivery struct {
	Deadline string
	Date     string
}

// StoreRecord is a store observed in a payload or a feed.
type StoreRecord struct {
	Base
	StoreGUID     string
	StoreID       string
	Address       string
	Schedule      [3]Delivery
	B2BPriceGUID  string
	B2CPriceGUID  string
	Method        string
	Visibility    string
	DeliveryRules string
	Outlet        string
}

func (s *StoreRecord) Value(column string) string {
	if v, ok := s.Base.value(column); ok {
		return v
	}

	switch column {
	case ColumnStoreGUID:
		return s.StoreGUID
	case ColumnStoreID:
		return s.StoreID
	case ColumnAddress:
		return s.Address
	case ColumnDeadline1:
		return s.Schedule[0].Deadline
	case ColumnDelivery1:
		return s.Schedule[0].Date
	case ColumnDeadline2:
		return s.Schedule[1].Deadline
	case ColumnDelivery2:
		return s.Schedule[1].Date
	case ColumnDeadline3:
		return s.Schedule[2].Deadline
	case ColumnDelivery3:
		return s.Schedule[2].Date
	case ColumnB2BPriceGUID:
		return s.B2BPriceGUID
	case ColumnB2CPriceGUID:
		return s.B2CPriceGUID
	case ColumnMethod:
		return s.Method
	case ColumnVisibility:
		return s.Visibility
	case ColumnDeliveryRules:
		return s.DeliveryRules
	case ColumnOutlet:
		return s.Outlet
	default:
		return ""
	}
}

func formatDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}

	return d.Decimal.String()
}
