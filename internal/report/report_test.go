package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []models.Record{
	&models.StockRecord{
		Base: models.Base{
			Direction: models.DirectionInternal,
			Time:      time.Date(2023, 1, 1, 3, 0, 0, 0, time.UTC),
			OrgName:   `ООО "ПУЛЬС Брянск"`,
			Link:      "http://kibana/doc/1",
		},
		Quantity:  decimal.NewNullDecimal(decimal.NewFromInt(5)),
		ProductID: "p-1",
	},
	&models.StockRecord{
		Base: models.Base{
			Direction: models.DirectionMarketplace,
			Time:      time.Date(2023, 1, 1, 3, 5, 0, 0, time.UTC),
			Link:      "http://kibana/doc/2",
		},
		ProductID: `"100"`,
		Price:     decimal.NewNullDecimal(decimal.RequireFromString("99.9")),
	},
}

func TestUnitEncode(t *testing.T) {
	layout := models.Layout{models.ColumnDirection, models.ColumnDatetime, models.ColumnOrgName,
		models.ColumnQuantity, models.ColumnProduct, models.ColumnPrice, models.ColumnLink}

	var buf bytes.Buffer
	err := report.Encode(&buf, layout, records)

	require.NoError(t, err)
	assert.Equal(t,
		"direction\tdatetime\torg_name\tquantity\tproduct_identifier\tprice\thit_link\n"+
			"->e  \t2023-01-01 03:00:00.000\t\"ООО \"\"ПУЛЬС Брянск\"\"\"\t5\tp-1\t\thttp://kibana/doc/1\n"+
			"\"  e->\"\t2023-01-01 03:05:00.000\t\t\t\"\"\"100\"\"\"\t99.9\thttp://kibana/doc/2\n",
		buf.String(),
	)
}

func TestUnitEncodeHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	err := report.Encode(&buf, models.LayoutStockClient, nil)

	require.NoError(t, err)
	assert.Equal(t, "direction\tdatetime\tquantity\tproduct_identifier\thit_link\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestUnitEncodeError(t *testing.T) {
	err := report.Encode(failingWriter{}, models.LayoutStock1C, records)

	assert.ErrorContains(t, err, "disk full")
}

func TestUnitWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "d")
	w := report.NewWriter(dir)

	path, err := w.Write(report.FileName(models.KindStocks), models.LayoutStock1C, records)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stocks_data.csv"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "direction\tdatetime\torg_name\tquantity\tproduct_identifier\texpiration_date\thit_link\n")
	assert.Len(t, bytes.Split(bytes.TrimSpace(content), []byte("\n")), 3)
}

func TestUnitFileName(t *testing.T) {
	assert.Equal(t, "prices_data.csv", report.FileName(models.KindPrices))
	assert.Equal(t, "stores_data.csv", report.FileName(models.KindStores))
}
