package models

import "slices"

// Layout is the ordered column set of a report.
type Layout []string

// Has tells whether the layout contains the column.
func (l Layout) Has(column string) bool {
	return slices.Contains(l, column)
}

func layout(parts ...[]string) Layout {
	var l Layout
	for _, p := range parts {
		l = append(l, p...)
	}

	return l
}

var (
	baseColumns      = []string{ColumnDirection, ColumnDatetime, ColumnOrgName}
	stockColumns     = []string{ColumnQuantity, ColumnProduct, ColumnExpiration}
	storeColumns     = []string{ColumnStoreGUID, ColumnStoreID, ColumnAddress}
	scheduleColumns  = []string{ColumnDeadline1, ColumnDelivery1, ColumnDeadline2, ColumnDelivery2, ColumnDeadline3, ColumnDelivery3}
	linkColumn       = []string{ColumnLink}
	stockBaseColumns = layout(baseColumns, stockColumns)
	priceBaseColumns = layout(baseColumns, []string{ColumnProduct})
	storeBaseColumns = layout(baseColumns, storeColumns)
)

// Stock layouts.
var (
	LayoutStock1C        = layout(stockBaseColumns, linkColumn)
	LayoutStockStandard  = layout(stockBaseColumns, []string{ColumnPrice, ColumnPriceGUID, ColumnRegion, ColumnPriceType}, linkColumn)
	LayoutStockEapteka   = layout(stockBaseColumns, []string{ColumnPriceGUID, ColumnErrors}, linkColumn)
	LayoutStockOzon      = layout(stockBaseColumns, []string{ColumnErrors, ColumnPriceGUID, ColumnPriceType, ColumnRegion}, linkColumn)
	LayoutStockAptekamos = layout(stockBaseColumns, []string{ColumnOperation, ColumnPrice, ColumnAddressGUID}, linkColumn)
	LayoutStockYandex    = layout(stockBaseColumns, []string{ColumnEndpoint, ColumnPriceGUID, ColumnRegion}, linkColumn)
	LayoutStockSbermm    = layout(stockBaseColumns, []string{ColumnPrice}, linkColumn)
	LayoutStockClient    = Layout{ColumnDirection, ColumnDatetime, ColumnQuantity, ColumnProduct, ColumnLink}
)

// Price layouts.
var (
	LayoutPrice1C = layout(priceBaseColumns, []string{
		ColumnPriceGUID, ColumnPriceType, ColumnVAT, ColumnB2CUsed, ColumnPriceIncVAT, ColumnPriceWoVAT, ColumnPricePromo,
	}, linkColumn)
	LayoutPriceStandard = layout(priceBaseColumns, []string{
		ColumnPrice, ColumnPriceGUID, ColumnPriceType, ColumnRegion, ColumnQuantity, ColumnExpiration,
	}, linkColumn)
	LayoutPriceAsnaru = layout(priceBaseColumns, []string{
		ColumnPriceGUID, ColumnPriceB2C, ColumnPriceB2B, ColumnVATB2B, ColumnExpiration,
	}, linkColumn)
	LayoutPriceOzon   = layout(priceBaseColumns, []string{ColumnPriceGUID, ColumnPrice, ColumnErrors}, linkColumn)
	LayoutPriceYandex = layout(priceBaseColumns, []string{ColumnPrice}, linkColumn)
	LayoutPriceSbermm = layout(priceBaseColumns, []string{ColumnPrice}, linkColumn)
)

// Store layouts.
var (
	LayoutStore1C       = layout(storeBaseColumns, scheduleColumns, []string{ColumnB2BPriceGUID, ColumnB2CPriceGUID}, linkColumn)
	LayoutStoreStandard = layout(storeBaseColumns, scheduleColumns, linkColumn)
	LayoutStoreSbermm   = layout(storeBaseColumns, linkColumn)
	LayoutStoreYandex   = layout(baseColumns, []string{
		ColumnMethod, ColumnVisibility, ColumnDeliveryRules, ColumnOutlet, ColumnAddress,
	}, linkColumn)
)
