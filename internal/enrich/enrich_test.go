package enrich_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/enrich"
	"github.com/MichalMitros/ecom-reconciler/internal/enrich/mocks"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models/modelstesting"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func stocks(keys ...string) []models.Keyed {
	return lo.Map(keys, func(key string, ix int) models.Keyed {
		return modelstesting.FakeStock(func(s *models.StockRecord) {
			s.MatchKey = key
			s.PriceGUID = key
			s.OrgName = ""
			s.Time = start.Add(time.Duration(ix) * time.Hour)
		})
	})
}

func keys(records []models.Keyed) []string {
	return lo.Map(records, func(r models.Keyed, _ int) string { return r.Key() })
}

func TestUnitApplyRegion(t *testing.T) {
	org := modelstesting.FakeOrganization(func(o *models.Organization) {
		o.RelatedRegions = []int{77, 50}
	})

	kept, err := enrich.NewEnricher(nil).Apply(
		context.Background(),
		stocks("77", "90", "50", "-1"),
		profile.Source{Filter: profile.FilterRegion},
		"aptekaforte",
		org,
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"77", "50"}, keys(kept))
	assert.True(t, kept[0].Timestamp().Before(kept[1].Timestamp()))
	for _, r := range kept {
		assert.Equal(t, org.Name, r.Organization())
	}
}

func TestUnitApplySecondaryLookup(t *testing.T) {
	retail := "retail"
	storage := mocks.NewStorage(t)
	storage.On("Owners", mock.Anything, models.LookupPriceGUID, "aloe", []string{"G1", "G2", "G3"}).
		Return(map[string]models.Owner{
			"G1": {Organization: "Alpha", PriceType: &retail},
			"G2": {Organization: "Beta"},
		}, nil).Once()

	kept, err := enrich.NewEnricher(storage).Apply(
		context.Background(),
		stocks("G1", "G2", "G1", "G3"),
		profile.Source{Filter: profile.FilterSecondaryLookup, Lookup: models.LookupPriceGUID},
		"aloe",
		modelstesting.FakeOrganization(func(o *models.Organization) { o.Name = "Alpha" }),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G1"}, keys(kept))
	for _, r := range kept {
		assert.Equal(t, "Alpha", r.Organization())
		assert.Equal(t, "retail", r.Value(models.ColumnPriceType))
	}
}

func TestUnitApplySecondaryLookupInChunks(t *testing.T) {
	guids := make([]string, 0, 1_200)
	for ix := 0; ix < 1_200; ix++ {
		guids = append(guids, fmt.Sprintf("00000000-0000-0000-0000-%012d", ix))
	}

	var looked [][]string
	storage := mocks.NewStorage(t)
	storage.On("Owners", mock.Anything, models.LookupMarketplacePriceGUID, "aloe", mock.Anything).
		Return(func(_ context.Context, _ models.LookupKind, _ string, keys []string) (map[string]models.Owner, error) {
			looked = append(looked, keys)
			return lo.SliceToMap(keys, func(k string) (string, models.Owner) {
				return k, models.Owner{Organization: "Alpha"}
			}), nil
		}).Times(3)

	kept, err := enrich.NewEnricher(storage).Apply(
		context.Background(),
		stocks(append(guids, guids[:10]...)...),
		profile.Source{Filter: profile.FilterSecondaryLookup, Lookup: models.LookupMarketplacePriceGUID},
		"aloe",
		modelstesting.FakeOrganization(func(o *models.Organization) { o.Name = "Alpha" }),
	)

	require.NoError(t, err)
	assert.Len(t, kept, 1_210)
	require.Len(t, looked, 3)
	assert.Equal(t, []int{500, 500, 200}, lo.Map(looked, func(k []string, _ int) int { return len(k) }))
	assert.ElementsMatch(t, guids, lo.Flatten(looked))
}

func TestUnitApplyChunkSize(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("Owners", mock.Anything, models.LookupStoreGUID, "eapteka", mock.Anything).
		Return(map[string]models.Owner{}, nil).Times(2)

	kept, err := enrich.NewEnricher(storage, enrich.WithChunkSize(2)).Apply(
		context.Background(),
		stocks("a", "b", "c", ""),
		profile.Source{Filter: profile.FilterSecondaryLookup, Lookup: models.LookupStoreGUID},
		"eapteka",
		modelstesting.FakeOrganization(),
	)

	require.NoError(t, err)
	assert.Empty(t, kept)
}

func TestUnitApplyLookupError(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("Owners", mock.Anything, models.LookupStoreID, "apteka36_6", []string{"1"}).
		Return(nil, fmt.Errorf("%w: %w", platform.ErrTransport, assert.AnError)).Once()

	_, err := enrich.NewEnricher(storage).Apply(
		context.Background(),
		stocks("1"),
		profile.Source{Filter: profile.FilterSecondaryLookup, Lookup: models.LookupStoreID},
		"apteka36_6",
		modelstesting.FakeOrganization(),
	)

	assert.ErrorIs(t, err, platform.ErrTransport)
	assert.ErrorContains(t, err, "can't look up store id owners")
}

func TestUnitApply(t *testing.T) {
	org := modelstesting.FakeOrganization(func(o *models.Organization) {
		o.ID = 42
		o.RelatedRegions = []int{32}
	})

	tests := map[string]struct {
		filter   profile.FilterBasis
		org      models.Organization
		wantKeys []string
		wantOrg  string
	}{
		"organization id": {
			filter:   profile.FilterOrganizationID,
			org:      org,
			wantKeys: []string{"42", "42"},
			wantOrg:  org.Name,
		},
		"none": {
			filter:   profile.FilterNone,
			org:      org,
			wantKeys: []string{"42", "7", "32", "42"},
			wantOrg:  org.Name,
		},
		"no organization": {
			filter:   profile.FilterRegion,
			wantKeys: []string{"42", "7", "32", "42"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kept, err := enrich.NewEnricher(nil).Apply(
				context.Background(),
				stocks("42", "7", "32", "42"),
				profile.Source{Filter: tt.filter},
				"sozvezdie",
				tt.org,
			)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, keys(kept))
			for _, r := range kept {
				assert.Equal(t, tt.wantOrg, r.Organization())
			}
		})
	}
}
