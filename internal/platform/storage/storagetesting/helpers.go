package storagetesting

import (
	"database/sql"
	_ "embed"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/ecom-reconciler/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// Open opens connection to DB and creates the tables used by lookups.
// The test is skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	if _, err := db.Exec(schema); err != nil {
		t.Fatal("can't create schema", err)
	}

	return db
}

// InsertUsers is a helper test function to insert marketplace API users.
func InsertUsers(t *testing.T, exc qrm.Executable, users ...pgmodels.UsersUser) {
	t.Helper()

	if len(users) == 0 {
		return
	}

	exec(t, exc, table.UsersUser.INSERT(table.UsersUser.AllColumns).MODELS(users), "users")
}

// InsertOrganizations is a helper test function to insert organizations.
func InsertOrganizations(t *testing.T, exc qrm.Executable, orgs ...pgmodels.CoreOrganization) {
	t.Helper()

	if len(orgs) == 0 {
		return
	}

	exec(t, exc, table.CoreOrganization.INSERT(table.CoreOrganization.AllColumns).MODELS(orgs), "organizations")
}

// InsertMarketplaces is a helper test function to insert marketplaces.
func InsertMarketplaces(t *testing.T, exc qrm.Executable, mps ...pgmodels.MarketplaceMarketplace) {
	t.Helper()

	if len(mps) == 0 {
		return
	}

	exec(t, exc, table.MarketplaceMarketplace.INSERT(table.MarketplaceMarketplace.AllColumns).MODELS(mps), "marketplaces")
}

// InsertPrices is a helper test function to insert organization price lists.
func InsertPrices(t *testing.T, exc qrm.Executable, prices ...pgmodels.PriceOrganizationprice) {
	t.Helper()

	if len(prices) == 0 {
		return
	}

	exec(t, exc, table.PriceOrganizationprice.INSERT(table.PriceOrganizationprice.AllColumns).MODELS(prices), "prices")
}

// InsertAPISettings is a helper test function to insert marketplace API settings.
func InsertAPISettings(t *testing.T, exc qrm.Executable, settings ...pgmodels.MarketplaceMarketplaceapisettings) {
	t.Helper()

	if len(settings) == 0 {
		return
	}

	stmt := table.MarketplaceMarketplaceapisettings.INSERT(table.MarketplaceMarketplaceapisettings.AllColumns).
		MODELS(settings)
	exec(t, exc, stmt, "api settings")
}

// InsertMultitokens is a helper test function to insert marketplace tokens.
func InsertMultitokens(t *testing.T, exc qrm.Executable, tokens ...pgmodels.MultitokenMultitoken) {
	t.Helper()

	if len(tokens) == 0 {
		return
	}

	exec(t, exc, table.MultitokenMultitoken.INSERT(table.MultitokenMultitoken.AllColumns).MODELS(tokens), "multitokens")
}

// InsertRegions is a helper test function to insert regions.
func InsertRegions(t *testing.T, exc qrm.Executable, regions ...pgmodels.AddressRegion) {
	t.Helper()

	if len(regions) == 0 {
		return
	}

	exec(t, exc, table.AddressRegion.INSERT(table.AddressRegion.AllColumns).MODELS(regions), "regions")
}

// InsertMarketplaceStores is a helper test function to insert marketplace stores.
func InsertMarketplaceStores(t *testing.T, exc qrm.Executable, stores ...pgmodels.DeliveryMarketplacestore) {
	t.Helper()

	if len(stores) == 0 {
		return
	}

	stmt := table.DeliveryMarketplacestore.INSERT(table.DeliveryMarketplacestore.AllColumns).MODELS(stores)
	exec(t, exc, stmt, "marketplace stores")
}

// InsertAddresses is a helper test function to insert organization addresses.
func InsertAddresses(t *testing.T, exc qrm.Executable, addresses ...pgmodels.DeliveryOrganizationaddress) {
	t.Helper()

	if len(addresses) == 0 {
		return
	}

	stmt := table.DeliveryOrganizationaddress.INSERT(table.DeliveryOrganizationaddress.AllColumns).MODELS(addresses)
	exec(t, exc, stmt, "addresses")
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.ProductOrganizationproduct) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	stmt := table.ProductOrganizationproduct.INSERT(table.ProductOrganizationproduct.AllColumns).MODELS(products)
	exec(t, exc, stmt, "products")
}

// InsertPriceSettings is a helper test function to insert unique price lists with their module b2c settings.
func InsertPriceSettings(
	t *testing.T,
	exc qrm.Executable,
	unique pgmodels.PricePriceunique,
	orgUnique pgmodels.PriceOrganizationpriceunique,
	settings pgmodels.MarketplaceMarketplacepricetypesettings,
) {
	t.Helper()

	exec(t, exc, table.PricePriceunique.INSERT(table.PricePriceunique.AllColumns).MODEL(unique), "unique prices")
	exec(t, exc, table.PriceOrganizationpriceunique.INSERT(table.PriceOrganizationpriceunique.AllColumns).
		MODEL(orgUnique), "organization unique prices")
	exec(t, exc, table.MarketplaceMarketplacepricetypesettings.
		INSERT(table.MarketplaceMarketplacepricetypesettings.AllColumns).
		MODEL(settings), "price type settings")
}

// CleanupData is a helper test function to delete all rows of the lookup tables.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	tables := []struct {
		name string
		stmt pg.DeleteStatement
	}{
		{"price type settings", table.MarketplaceMarketplacepricetypesettings.DELETE().
			WHERE(table.MarketplaceMarketplacepricetypesettings.ID.IS_NOT_NULL())},
		{"organization unique prices", table.PriceOrganizationpriceunique.DELETE().
			WHERE(table.PriceOrganizationpriceunique.ID.IS_NOT_NULL())},
		{"unique prices", table.PricePriceunique.DELETE().WHERE(table.PricePriceunique.ID.IS_NOT_NULL())},
		{"products", table.ProductOrganizationproduct.DELETE().WHERE(table.ProductOrganizationproduct.ID.IS_NOT_NULL())},
		{"addresses", table.DeliveryOrganizationaddress.DELETE().
			WHERE(table.DeliveryOrganizationaddress.ID.IS_NOT_NULL())},
		{"marketplace stores", table.DeliveryMarketplacestore.DELETE().
			WHERE(table.DeliveryMarketplacestore.ID.IS_NOT_NULL())},
		{"regions", table.AddressRegion.DELETE().WHERE(table.AddressRegion.ID.IS_NOT_NULL())},
		{"multitokens", table.MultitokenMultitoken.DELETE().WHERE(table.MultitokenMultitoken.ID.IS_NOT_NULL())},
		{"api settings", table.MarketplaceMarketplaceapisettings.DELETE().
			WHERE(table.MarketplaceMarketplaceapisettings.ID.IS_NOT_NULL())},
		{"prices", table.PriceOrganizationprice.DELETE().WHERE(table.PriceOrganizationprice.ID.IS_NOT_NULL())},
		{"marketplaces", table.MarketplaceMarketplace.DELETE().WHERE(table.MarketplaceMarketplace.ID.IS_NOT_NULL())},
		{"organizations", table.CoreOrganization.DELETE().WHERE(table.CoreOrganization.ID.IS_NOT_NULL())},
		{"users", table.UsersUser.DELETE().WHERE(table.UsersUser.ID.IS_NOT_NULL())},
	}

	for _, tbl := range tables {
		if _, err := tbl.stmt.Exec(exc); err != nil {
			t.Fatalf("can't delete %s data: %s", tbl.name, err)
		}
	}
}

func exec(t *testing.T, exc qrm.Executable, stmt pg.InsertStatement, name string) {
	t.Helper()

	if _, err := stmt.Exec(exc); err != nil {
		t.Fatalf("can't insert %s: %s", name, err)
	}
}
