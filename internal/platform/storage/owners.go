package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"

	pg "github.com/go-jet/jet/v2/postgres"
)

//go:generate make -C ../../../ generate-db

type ownerRow struct {
	Key          string
	Organization *string
	PriceType    *string
}

// Owners resolves record keys to their owners in one query.
// The returned map is keyed by the keys as they were passed; keys without an owner are absent.
func (p Postgres) Owners(
	ctx context.Context,
	kind models.LookupKind,
	marketplace string,
	keys []string,
) (map[string]models.Owner, error) {
	canonical, values := lookupValues(kind, keys)
	if len(values) == 0 {
		return map[string]models.Owner{}, nil
	}

	stmt, err := ownersStatement(kind, marketplace, values)
	if err != nil {
		return nil, err
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var rows []ownerRow
	if err := stmt.QueryContext(ctx, p.db, &rows); err != nil {
		return nil, queryError(err, kind.String()+" owners", fmt.Sprintf("%d keys", len(values)))
	}

	owners := make(map[string]models.Owner, len(keys))
	for ix := range rows {
		if rows[ix].Organization == nil {
			continue
		}
		for _, key := range canonical[normalizeKey(kind, rows[ix].Key)] {
			// rows are ordered, first owner of a key wins
			if _, ok := owners[key]; ok {
				continue
			}
			owners[key] = models.Owner{
				Organization: *rows[ix].Organization,
				PriceType:    rows[ix].PriceType,
			}
		}
	}

	return owners, nil
}

// lookupValues returns SQL literals for the keys and the passed keys grouped by their canonical form.
func lookupValues(kind models.LookupKind, keys []string) (map[string][]string, []pg.Expression) {
	canonical := make(map[string][]string, len(keys))
	values := make([]pg.Expression, 0, len(keys))
	for _, key := range keys {
		norm := normalizeKey(kind, key)
		if norm == "" {
			continue
		}
		if _, seen := canonical[norm]; !seen {
			if isUUIDLookup(kind) {
				values = append(values, pg.UUID(uuid.MustParse(norm)))
			} else {
				values = append(values, pg.String(norm))
			}
		}
		canonical[norm] = append(canonical[norm], key)
	}

	return canonical, values
}

func normalizeKey(kind models.LookupKind, key string) string {
	if !isUUIDLookup(kind) {
		return strings.TrimSpace(key)
	}

	id, err := uuid.Parse(strings.TrimSpace(key))
	if err != nil {
		return ""
	}

	return id.String()
}

func isUUIDLookup(kind models.LookupKind) bool {
	switch kind {
	case models.LookupPriceGUID, models.LookupMarketplacePriceGUID, models.LookupStoreGUID:
		return true
	default:
		return false
	}
}

func ownersStatement(kind models.LookupKind, marketplace string, values []pg.Expression) (pg.SelectStatement, error) {
	var (
		price   = table.PriceOrganizationprice
		address = table.DeliveryOrganizationaddress
		org     = table.CoreOrganization
	)

	switch kind {
	case models.LookupPriceGUID:
		return pg.SELECT(
			price.GUID.AS("ownerRow.Key"),
			org.Name.AS("ownerRow.Organization"),
			price.PriceType.AS("ownerRow.PriceType"),
		).
			FROM(price.INNER_JOIN(org, price.OrganizationID.EQ(org.ID))).
			WHERE(price.GUID.IN(values...)).
			ORDER_BY(price.GUID.ASC(), org.Name.ASC()), nil
	case models.LookupMarketplacePriceGUID:
		return pg.SELECT(
			price.GUID.AS("ownerRow.Key"),
			org.Name.AS("ownerRow.Organization"),
			price.PriceType.AS("ownerRow.PriceType"),
		).
			FROM(
				price.
					INNER_JOIN(org, pg.AND(price.OrganizationID.EQ(org.ID), org.Name.IS_NOT_NULL())).
					INNER_JOIN(table.MarketplaceMarketplace, price.MarketplaceID.EQ(table.MarketplaceMarketplace.ID)).
					INNER_JOIN(table.UsersUser, pg.AND(
						table.MarketplaceMarketplace.APIUserID.EQ(table.UsersUser.ID),
						table.UsersUser.Username.EQ(pg.String(marketplace)),
					)),
			).
			WHERE(price.GUID.IN(values...)).
			ORDER_BY(price.GUID.ASC(), org.Name.ASC()), nil
	case models.LookupStoreGUID:
		return pg.SELECT(
			address.AddressGUID.AS("ownerRow.Key"),
			org.Name.AS("ownerRow.Organization"),
		).
			DISTINCT().
			FROM(address.INNER_JOIN(org, address.OrganizationID.EQ(org.ID))).
			WHERE(address.AddressGUID.IN(values...)).
			ORDER_BY(address.AddressGUID.ASC(), org.Name.ASC()), nil
	case models.LookupStoreID:
		return pg.SELECT(
			address.AddressID.AS("ownerRow.Key"),
			org.Name.AS("ownerRow.Organization"),
		).
			DISTINCT().
			FROM(address.INNER_JOIN(org, address.OrganizationID.EQ(org.ID))).
			WHERE(address.AddressID.IN(values...)).
			ORDER_BY(address.AddressID.ASC(), org.Name.ASC()), nil
	case models.LookupMarketplaceStoreGUID:
		mpStore := table.DeliveryMarketplacestore
		return pg.SELECT(
			mpStore.MarketplaceGUID.AS("ownerRow.Key"),
			org.Name.AS("ownerRow.Organization"),
		).
			DISTINCT().
			FROM(
				address.
					INNER_JOIN(mpStore, address.MarketplaceStoreID.EQ(mpStore.ID)).
					INNER_JOIN(org, address.OrganizationID.EQ(org.ID)),
			).
			WHERE(mpStore.MarketplaceGUID.IN(values...)).
			ORDER_BY(mpStore.MarketplaceGUID.ASC(), org.Name.ASC()), nil
	default:
		return nil, fmt.Errorf("unknown lookup kind %d", kind)
	}
}
