package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/lib/pq"

	pgmodels "github.com/MichalMitros/ecom-reconciler/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// excludedMarketplaceID is the marketplace whose addresses duplicate regular stores.
const excludedMarketplaceID = 12

// Postgres is storage for organizations, stores, products and price lists of the platform.
type Postgres struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Option is Postgres option.
type Option func(p *Postgres)

// WithQueryTimeout sets the timeout of a single lookup.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		p.queryTimeout = timeout
	}
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB, ops ...Option) Postgres {
	p := Postgres{
		db:           db,
		queryTimeout: 30 * time.Second,
	}

	for _, op := range ops {
		op(&p)
	}

	return p
}

// Ping checks that the database is reachable.
func (p Postgres) Ping(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: can't reach database: %w", platform.ErrTransport, err)
	}

	return nil
}

// OrganizationByCampaignID returns name of the organization whose price list has marketplace API settings
// with the campaign id.
func (p Postgres) OrganizationByCampaignID(ctx context.Context, campaignID string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var org pgmodels.CoreOrganization
	err := pg.SELECT(table.CoreOrganization.Name).
		FROM(
			table.MarketplaceMarketplaceapisettings.
				INNER_JOIN(table.PriceOrganizationprice,
					table.MarketplaceMarketplaceapisettings.PriceType.EQ(table.PriceOrganizationprice.GUID)).
				INNER_JOIN(table.CoreOrganization,
					table.PriceOrganizationprice.OrganizationID.EQ(table.CoreOrganization.ID)),
		).
		WHERE(table.MarketplaceMarketplaceapisettings.CampaignID.EQ(pg.String(campaignID))).
		LIMIT(1).
		QueryContext(ctx, p.db, &org)
	if err != nil {
		return "", queryError(err, "organization", campaignID)
	}

	if org.Name == nil {
		return "", &platform.NotFoundError{Entity: "organization", Identifier: campaignID}
	}

	return *org.Name, nil
}

// Organization returns id and API endpoint of the organization matching the name.
func (p Postgres) Organization(ctx context.Context, name string) (*models.Organization, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var org pgmodels.CoreOrganization
	err := pg.SELECT(table.CoreOrganization.ID, table.CoreOrganization.Name, table.CoreOrganization.Endpoint).
		FROM(table.CoreOrganization).
		WHERE(pg.LOWER(table.CoreOrganization.Name).LIKE(pg.LOWER(pg.String("%" + name + "%")))).
		ORDER_BY(table.CoreOrganization.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &org)
	if err != nil {
		return nil, queryError(err, "organization", name)
	}

	return &models.Organization{
		ID:       int(org.ID),
		Name:     deref(org.Name),
		Endpoint: deref(org.Endpoint),
	}, nil
}

// OrganizationRegions returns distinct region codes of the organization's addresses.
func (p Postgres) OrganizationRegions(ctx context.Context, name string) ([]int, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var regions []pgmodels.AddressRegion
	err := pg.SELECT(table.AddressRegion.Code).
		DISTINCT().
		FROM(
			table.AddressRegion.
				INNER_JOIN(table.DeliveryOrganizationaddress,
					table.AddressRegion.Name.EQ(table.DeliveryOrganizationaddress.Region)).
				INNER_JOIN(table.CoreOrganization,
					table.DeliveryOrganizationaddress.OrganizationID.EQ(table.CoreOrganization.ID)),
		).
		WHERE(table.CoreOrganization.Name.EQ(pg.String(name))).
		ORDER_BY(table.AddressRegion.Code.ASC()).
		QueryContext(ctx, p.db, &regions)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, queryError(err, "regions", name)
	}

	codes := make([]int, 0, len(regions))
	for ix := range regions {
		code, err := strconv.Atoi(strings.TrimSpace(regions[ix].Code))
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}

	return codes, nil
}

type campaignRow struct {
	CampaignID *string
	LatinName  *string
}

// CampaignSettings returns campaign id and latin name of the organization's price list
// registered for the marketplace API user.
func (p Postgres) CampaignSettings(ctx context.Context, orgID int, marketplace string) (*string, *string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	settings := table.MarketplaceMarketplaceapisettings
	var row campaignRow
	err := pg.SELECT(
		settings.CampaignID.AS("campaignRow.CampaignID"),
		table.MultitokenMultitoken.Metadata.AS("campaignRow.LatinName"),
	).
		FROM(
			settings.
				INNER_JOIN(table.PriceOrganizationprice, settings.PriceType.EQ(table.PriceOrganizationprice.GUID)).
				INNER_JOIN(table.MarketplaceMarketplace, settings.MarketplaceID.EQ(table.MarketplaceMarketplace.ID)).
				INNER_JOIN(table.UsersUser, table.MarketplaceMarketplace.APIUserID.EQ(table.UsersUser.ID)).
				LEFT_JOIN(table.MultitokenMultitoken, pg.AND(
					table.MultitokenMultitoken.UserID.EQ(table.UsersUser.ID),
					pg.CAST(settings.PriceType).AS_TEXT().EQ(table.MultitokenMultitoken.PriceType),
				)),
		).
		WHERE(pg.AND(
			settings.CampaignID.IS_NOT_NULL(),
			table.UsersUser.Username.EQ(pg.String(marketplace)),
			table.PriceOrganizationprice.OrganizationID.EQ(pg.Int(int64(orgID))),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &row)
	if err != nil {
		return nil, nil, queryError(err, marketplace+" campaign", strconv.Itoa(orgID))
	}

	return row.CampaignID, row.LatinName, nil
}

// StoreGUIDByAddressID returns GUID of the organization address with the address id.
func (p Postgres) StoreGUIDByAddressID(ctx context.Context, addressID string) (string, error) {
	return p.storeGUID(ctx, table.DeliveryOrganizationaddress.AddressID.EQ(pg.String(addressID)), addressID)
}

// StoreGUIDByOutlet returns GUID of the organization address with the marketplace outlet id.
func (p Postgres) StoreGUIDByOutlet(ctx context.Context, outletID int64) (string, error) {
	return p.storeGUID(ctx, table.DeliveryOrganizationaddress.OutletID.EQ(pg.Int(outletID)), strconv.FormatInt(outletID, 10))
}

func (p Postgres) storeGUID(ctx context.Context, condition pg.BoolExpression, identifier string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var address pgmodels.DeliveryOrganizationaddress
	err := pg.SELECT(table.DeliveryOrganizationaddress.AddressGUID).
		FROM(table.DeliveryOrganizationaddress).
		WHERE(condition).
		LIMIT(1).
		QueryContext(ctx, p.db, &address)
	if err != nil {
		return "", queryError(err, "store", identifier)
	}

	return address.AddressGUID.String(), nil
}

type storeRow struct {
	AddressID *string
	OutletID  *int64
	OrgName   *string
}

// Store returns the organization address with the GUID.
func (p Postgres) Store(ctx context.Context, guid string) (*models.Store, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	id, err := uuid.Parse(guid)
	if err != nil {
		return nil, &platform.NotFoundError{Entity: "store", Identifier: guid}
	}

	address := table.DeliveryOrganizationaddress
	var row storeRow
	err = pg.SELECT(
		address.AddressID.AS("storeRow.AddressID"),
		address.OutletID.AS("storeRow.OutletID"),
		table.CoreOrganization.Name.AS("storeRow.OrgName"),
	).
		FROM(address.INNER_JOIN(table.CoreOrganization, address.OrganizationID.EQ(table.CoreOrganization.ID))).
		WHERE(pg.AND(
			address.AddressGUID.EQ(pg.UUID(id)),
			address.MarketplaceID.NOT_EQ(pg.Int(excludedMarketplaceID)),
		)).
		ORDER_BY(address.OutletID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &row)
	if err != nil {
		return nil, queryError(err, "store", guid)
	}

	return &models.Store{
		GUID:     id.String(),
		ID:       deref(row.AddressID),
		OutletID: row.OutletID,
		OrgName:  deref(row.OrgName),
	}, nil
}

// ProductCodeByGUID returns code of the product with the GUID.
func (p Postgres) ProductCodeByGUID(ctx context.Context, guid string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	id, err := uuid.Parse(guid)
	if err != nil {
		return "", &platform.NotFoundError{Entity: "product", Identifier: guid}
	}

	var product pgmodels.ProductOrganizationproduct
	err = pg.SELECT(table.ProductOrganizationproduct.Code).
		FROM(table.ProductOrganizationproduct).
		WHERE(table.ProductOrganizationproduct.GUID.EQ(pg.UUID(id))).
		LIMIT(1).
		QueryContext(ctx, p.db, &product)
	if err != nil {
		return "", queryError(err, "product", guid)
	}

	return product.Code, nil
}

// ProductGUIDByCode returns GUID of the product with the code.
func (p Postgres) ProductGUIDByCode(ctx context.Context, code string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var product pgmodels.ProductOrganizationproduct
	err := pg.SELECT(table.ProductOrganizationproduct.GUID).
		FROM(table.ProductOrganizationproduct).
		WHERE(table.ProductOrganizationproduct.Code.EQ(pg.String(code))).
		LIMIT(1).
		QueryContext(ctx, p.db, &product)
	if err != nil {
		return "", queryError(err, "product", code)
	}

	return product.GUID.String(), nil
}

// MarketplaceGUID returns GUID of the marketplace served by the API user.
func (p Postgres) MarketplaceGUID(ctx context.Context, marketplace string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var mp pgmodels.MarketplaceMarketplace
	err := pg.SELECT(table.MarketplaceMarketplace.GUID).
		FROM(table.MarketplaceMarketplace.
			INNER_JOIN(table.UsersUser, table.MarketplaceMarketplace.APIUserID.EQ(table.UsersUser.ID))).
		WHERE(table.UsersUser.Username.EQ(pg.String(marketplace))).
		LIMIT(1).
		QueryContext(ctx, p.db, &mp)
	if err != nil {
		return "", queryError(err, "marketplace", marketplace)
	}

	return mp.GUID.String(), nil
}

type priceSettingRow struct {
	GUID    string
	Enabled bool
}

// PriceSettings returns price list GUIDs of the organization for the marketplace mapped to
// whether module b2c prices are enabled for them. The most recent price list wins.
func (p Postgres) PriceSettings(ctx context.Context, marketplace, orgName string) (map[string]bool, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var (
		settings = table.MarketplaceMarketplacepricetypesettings
		unique   = table.PriceOrganizationpriceunique
		price    = table.PriceOrganizationprice
		rows     []priceSettingRow
	)
	err := pg.SELECT(
		table.PricePriceunique.GUID.AS("priceSettingRow.GUID"),
		settings.EnableModuleb2cPrices.AS("priceSettingRow.Enabled"),
	).
		FROM(
			settings.
				INNER_JOIN(unique, settings.OrgPriceUniqueID.EQ(unique.ID)).
				INNER_JOIN(table.PricePriceunique, unique.PriceID.EQ(table.PricePriceunique.ID)).
				INNER_JOIN(price, pg.AND(
					table.PricePriceunique.GUID.EQ(price.GUID),
					unique.OrganizationID.EQ(price.OrganizationID),
					unique.MarketplaceID.EQ(price.MarketplaceID),
					table.PricePriceunique.PriceType.EQ(price.PriceType),
				)).
				INNER_JOIN(table.CoreOrganization, price.OrganizationID.EQ(table.CoreOrganization.ID)).
				INNER_JOIN(table.MarketplaceMarketplace, price.MarketplaceID.EQ(table.MarketplaceMarketplace.ID)).
				INNER_JOIN(table.UsersUser, table.MarketplaceMarketplace.APIUserID.EQ(table.UsersUser.ID)),
		).
		WHERE(pg.AND(
			table.CoreOrganization.Name.EQ(pg.String(orgName)),
			table.UsersUser.Username.EQ(pg.String(marketplace)),
		)).
		ORDER_BY(price.DateAt.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, queryError(err, "price settings", orgName)
	}

	result := make(map[string]bool, len(rows))
	for ix := range rows {
		result[strings.ToLower(rows[ix].GUID)] = rows[ix].Enabled
	}

	return result, nil
}

func (p Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, p.queryTimeout)
}

// queryError converts a jet query error into a platform error.
func queryError(err error, entity, identifier string) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return &platform.NotFoundError{Entity: entity, Identifier: identifier}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("can't query %s: %w", entity, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: can't query %s: %w", platform.ErrTransport, entity, err)
	}

	return fmt.Errorf("can't query %s: %w", entity, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
