package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/google/uuid"
)

//go:generate mockery --name Storage --filename storage.go

const (
	yandexMarketplace = "yandexdbs"
	sbermmMarketplace = "sbermm"
)

// Storage provides relational lookups needed to resolve identities.
type Storage interface {
	OrganizationByCampaignID(ctx context.Context, campaignID string) (string, error)
	Organization(ctx context.Context, name string) (*models.Organization, error)
	OrganizationRegions(ctx context.Context, name string) ([]int, error)
	CampaignSettings(ctx context.Context, orgID int, marketplace string) (campaignID, latinName *string, err error)
	StoreGUIDByAddressID(ctx context.Context, addressID string) (string, error)
	StoreGUIDByOutlet(ctx context.Context, outletID int64) (string, error)
	Store(ctx context.Context, guid string) (*models.Store, error)
	ProductCodeByGUID(ctx context.Context, guid string) (string, error)
	ProductGUIDByCode(ctx context.Context, code string) (string, error)
}

// Query holds identifiers given by the operator.
type Query struct {
	Organization string
	Store        string
	Product      string
	// Verbatim skips relational resolution, identifiers are used as given.
	Verbatim bool
}

// Resolver resolves free form identifiers into canonical identities.
type Resolver struct {
	storage Storage
}

// NewResolver returns new Resolver.
func NewResolver(storage Storage) *Resolver {
	return &Resolver{storage: storage}
}

// Resolve resolves the store, the organization and the product of the query.
// Without an organization identifier the organization of the store is used.
func (r *Resolver) Resolve(ctx context.Context, q Query) (models.Identity, error) {
	if q.Verbatim {
		return verbatim(q), nil
	}

	var (
		identity models.Identity
		err      error
	)

	if q.Store != "" {
		if identity.Store, err = r.ResolveStore(ctx, q.Store); err != nil {
			return models.Identity{}, err
		}
	}

	orgIdentifier := q.Organization
	if orgIdentifier == "" && identity.Store != nil {
		orgIdentifier = identity.Store.OrgName
	}
	if identity.Organization, err = r.ResolveOrganization(ctx, orgIdentifier); err != nil {
		return models.Identity{}, err
	}

	if q.Product != "" {
		if identity.Product, err = r.ResolveProduct(ctx, q.Product); err != nil {
			return models.Identity{}, err
		}
	}

	return identity, nil
}

// ResolveOrganization resolves a main region code, a yandex campaign id or a name substring.
// An empty identifier resolves to an empty organization.
func (r *Resolver) ResolveOrganization(ctx context.Context, identifier string) (models.Organization, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.Organization{}, nil
	}

	if code, err := strconv.Atoi(identifier); err == nil {
		if org, ok := organizationByCode(code); ok {
			return r.ResolveOrganization(ctx, org.name)
		}

		name, err := r.storage.OrganizationByCampaignID(ctx, identifier)
		if err != nil {
			return models.Organization{}, notFoundAs(err, "organization", identifier)
		}

		return r.ResolveOrganization(ctx, name)
	}

	name := identifier
	if org, ok := organizationByName(identifier); ok {
		name = org.name
	}

	return r.organization(ctx, name)
}

func (r *Resolver) organization(ctx context.Context, name string) (models.Organization, error) {
	org, err := r.storage.Organization(ctx, name)
	if err != nil {
		return models.Organization{}, notFoundAs(err, "organization", name)
	}
	org.RegionCode = regionCode(org.Name)

	if org.RelatedRegions, err = r.storage.OrganizationRegions(ctx, org.Name); err != nil {
		return models.Organization{}, fmt.Errorf("can't get regions of %s: %w", org.Name, err)
	}

	if org.CampaignID, org.LatinName, err = r.campaign(ctx, org.ID, yandexMarketplace); err != nil {
		return models.Organization{}, err
	}
	if org.SbermmCampaignID, _, err = r.campaign(ctx, org.ID, sbermmMarketplace); err != nil {
		return models.Organization{}, err
	}

	return *org, nil
}

// campaign returns nil values when the organization has no campaign on the marketplace.
func (r *Resolver) campaign(ctx context.Context, orgID int, marketplace string) (*string, *string, error) {
	campaignID, latinName, err := r.storage.CampaignSettings(ctx, orgID, marketplace)
	if errors.Is(err, platform.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("can't get %s campaign: %w", marketplace, err)
	}

	return campaignID, latinName, nil
}

// ResolveStore resolves a store GUID, an address id or an outlet id.
func (r *Resolver) ResolveStore(ctx context.Context, identifier string) (*models.Store, error) {
	identifier = strings.TrimSpace(identifier)

	if id, err := uuid.Parse(identifier); err == nil {
		store, err := r.storage.Store(ctx, id.String())
		if err != nil {
			return nil, notFoundAs(err, "store", identifier)
		}
		store.RegionCode = regionCode(store.OrgName)

		return store, nil
	}

	guid, err := r.storage.StoreGUIDByAddressID(ctx, identifier)
	if err == nil {
		return r.ResolveStore(ctx, guid)
	}
	if !errors.Is(err, platform.ErrNotFound) {
		return nil, err
	}

	if outlet, convErr := strconv.ParseInt(identifier, 10, 64); convErr == nil {
		guid, err = r.storage.StoreGUIDByOutlet(ctx, outlet)
		if err == nil {
			return r.ResolveStore(ctx, guid)
		}
		if !errors.Is(err, platform.ErrNotFound) {
			return nil, err
		}
	}

	return nil, &platform.NotFoundError{Entity: "store", Identifier: identifier}
}

// ResolveProduct completes a product GUID with its code or a code with its GUID.
func (r *Resolver) ResolveProduct(ctx context.Context, identifier string) (*models.Product, error) {
	identifier = strings.TrimSpace(identifier)

	if id, err := uuid.Parse(identifier); err == nil {
		code, err := r.storage.ProductCodeByGUID(ctx, id.String())
		if err != nil {
			return nil, notFoundAs(err, "product", identifier)
		}

		return &models.Product{GUID: id.String(), Code: code}, nil
	}

	guid, err := r.storage.ProductGUIDByCode(ctx, identifier)
	if err != nil {
		return nil, notFoundAs(err, "product", identifier)
	}

	return &models.Product{GUID: guid, Code: identifier}, nil
}

func verbatim(q Query) models.Identity {
	identity := models.Identity{
		Organization: models.Organization{Name: q.Organization},
	}
	if q.Store != "" {
		identity.Store = &models.Store{GUID: q.Store}
	}
	if q.Product != "" {
		identity.Product = &models.Product{Code: q.Product}
	}

	return identity
}

// notFoundAs reports the identifier given by the operator instead of an intermediate one.
func notFoundAs(err error, entity, identifier string) error {
	if errors.Is(err, platform.ErrNotFound) {
		return &platform.NotFoundError{Entity: entity, Identifier: identifier}
	}

	return err
}
