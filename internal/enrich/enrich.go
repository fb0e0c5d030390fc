package enrich

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go

// DefaultChunkSize is the maximum number of keys resolved by one lookup.
const DefaultChunkSize = 500

// Storage resolves record keys to their owners.
type Storage interface {
	Owners(ctx context.Context, kind models.LookupKind, marketplace string, keys []string) (map[string]models.Owner, error)
}

// Option is custom configuration of Enricher.
type Option func(e *Enricher)

// WithChunkSize sets the maximum number of keys resolved by one lookup.
func WithChunkSize(size int) Option {
	return func(e *Enricher) {
		if size > 0 {
			e.chunkSize = size
		}
	}
}

// Enricher attaches organizations to records and keeps the records of one organization.
type Enricher struct {
	storage   Storage
	chunkSize int
}

// NewEnricher returns new Enricher.
func NewEnricher(storage Storage, ops ...Option) *Enricher {
	e := &Enricher{
		storage:   storage,
		chunkSize: DefaultChunkSize,
	}

	for _, op := range ops {
		op(e)
	}

	return e
}

// Apply filters records by the filter basis of the source and returns the records of the organization
// in their original order. Without an organization records are returned unfiltered.
func (e *Enricher) Apply(
	ctx context.Context,
	records []models.Keyed,
	src profile.Source,
	marketplace string,
	org models.Organization,
) ([]models.Keyed, error) {
	if org.IsEmpty() {
		return records, nil
	}

	switch src.Filter {
	case profile.FilterRegion:
		return keep(records, org, func(r models.Keyed) bool {
			code, err := strconv.Atoi(r.Key())
			return err == nil && org.HasRegion(code)
		}), nil
	case profile.FilterOrganizationID:
		id := strconv.Itoa(org.ID)
		return keep(records, org, func(r models.Keyed) bool {
			return r.Key() == id
		}), nil
	case profile.FilterSecondaryLookup:
		return e.lookup(ctx, records, src.Lookup, marketplace, org)
	default:
		return keep(records, org, func(models.Keyed) bool { return true }), nil
	}
}

// lookup resolves distinct keys in chunks and keeps records owned by the organization.
// Records whose key has no owner are dropped.
func (e *Enricher) lookup(
	ctx context.Context,
	records []models.Keyed,
	kind models.LookupKind,
	marketplace string,
	org models.Organization,
) ([]models.Keyed, error) {
	keys := lo.Uniq(lo.FilterMap(records, func(r models.Keyed, _ int) (string, bool) {
		return r.Key(), r.Key() != ""
	}))

	owners := make(map[string]models.Owner, len(keys))
	for _, chunk := range lo.Chunk(keys, e.chunkSize) {
		found, err := e.storage.Owners(ctx, kind, marketplace, chunk)
		if err != nil {
			return nil, fmt.Errorf("can't look up %s owners: %w", kind, err)
		}
		for key, owner := range found {
			owners[key] = owner
		}
	}

	kept := make([]models.Keyed, 0, len(records))
	for _, r := range records {
		owner, ok := owners[r.Key()]
		if !ok {
			continue
		}
		r.SetOwner(owner)
		if r.Organization() == org.Name {
			kept = append(kept, r)
		}
	}

	return kept, nil
}

// keep returns records accepted by the predicate, marked as owned by the organization.
func keep(records []models.Keyed, org models.Organization, accept func(r models.Keyed) bool) []models.Keyed {
	kept := make([]models.Keyed, 0, len(records))
	for _, r := range records {
		if !accept(r) {
			continue
		}
		if r.Organization() == "" {
			r.SetOwner(models.Owner{Organization: org.Name})
		}
		kept = append(kept, r)
	}

	return kept
}
