package models

// Organization is a canonical organization with the attributes derived from it.
type Organization struct {
	ID               int
	Name             string
	Endpoint         string
	RegionCode       int
	RelatedRegions   []int
	CampaignID       *string
	LatinName        *string
	SbermmCampaignID *string
}

// IsEmpty tells whether no organization was resolved.
func (o Organization) IsEmpty() bool {
	return o.Name == ""
}

// HasRegion tells whether the code is one of the organization's related regions.
func (o Organization) HasRegion(code int) bool {
	for _, c := range o.RelatedRegions {
		if c == code {
			return true
		}
	}

	return false
}

// Store is a resolved store (organization address).
type Store struct {
	GUID       string
	ID         string
	OutletID   *int64
	OrgName    string
	RegionCode int
}

// Product is a resolved product.
type Product struct {
	GUID string
	Code string
}

// Identifiers returns the non-empty product identifiers accepted in payloads.
func (p *Product) Identifiers() []string {
	if p == nil {
		return nil
	}

	ids := make([]string, 0, 2)
	for _, id := range []string{p.GUID, p.Code} {
		if id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// Identity is the result of identity resolution. It is not modified after resolution.
type Identity struct {
	Organization Organization
	Store        *Store
	Product      *Product
}

// IsEmpty tells whether neither an organization nor a store was resolved.
func (i Identity) IsEmpty() bool {
	return i.Organization.IsEmpty() && i.Store == nil
}

// StoreKeys returns the store identifiers accepted in payloads.
func (i Identity) StoreKeys() []string {
	if i.Store == nil {
		return nil
	}

	keys := []string{i.Store.GUID}
	if i.Store.ID != "" && i.Store.ID != i.Store.GUID {
		keys = append(keys, i.Store.ID)
	}

	return keys
}

// Owner is the result of a secondary lookup for a record key.
type Owner struct {
	Organization string
	PriceType    *string
}

// LookupKind selects the relational lookup that maps record keys to owners.
type LookupKind int

const (
	// LookupPriceGUID maps price list GUIDs to organizations.
	LookupPriceGUID LookupKind = iota
	// LookupMarketplacePriceGUID maps price list GUIDs of one marketplace to organizations.
	LookupMarketplacePriceGUID
	// LookupStoreGUID maps organization address GUIDs to organizations.
	LookupStoreGUID
	// LookupStoreID maps organization address ids to organizations.
	LookupStoreID
	// LookupMarketplaceStoreGUID maps marketplace store GUIDs to organizations.
	LookupMarketplaceStoreGUID
)

func (k LookupKind) String() string {
	switch k {
	case LookupPriceGUID:
		return "price guid"
	case LookupMarketplacePriceGUID:
		return "marketplace price guid"
	case LookupStoreGUID:
		return "store guid"
	case LookupStoreID:
		return "store id"
	case LookupMarketplaceStoreGUID:
		return "marketplace store guid"
	default:
		return "unknown"
	}
}
