package reconciler_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/extractor"
	xmocks "github.com/MichalMitros/ecom-reconciler/internal/extractor/mocks"
	"github.com/MichalMitros/ecom-reconciler/internal/identity"
	imocks "github.com/MichalMitros/ecom-reconciler/internal/identity/mocks"
	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/merge"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models/modelstesting"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/MichalMitros/ecom-reconciler/internal/reconciler"
	"github.com/MichalMitros/ecom-reconciler/internal/reconciler/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	end      = time.Date(2023, 1, 1, 6, 0, 0, 0, time.UTC)
	now      = time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC)
	registry = func() *profile.Registry {
		r, err := profile.NewRegistry()
		if err != nil {
			panic(err)
		}
		return r
	}()
	org = modelstesting.FakeOrganization(func(o *models.Organization) {
		o.Name = `ООО "ПУЛЬС Брянск"`
		o.Endpoint = "/bryansk"
	})
	malformedLink = "http://kibana/doc/malformed"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func document(at, payload string, ops ...func(d *models.Document)) models.Document {
	return modelstesting.FakeDocument(payload, append([]func(d *models.Document){
		func(d *models.Document) { d.Timestamp = at },
	}, ops...)...)
}

func byUsername(username string) any {
	return mock.MatchedBy(func(q logquery.Query) bool {
		return lo.Contains(q.Usernames, username)
	})
}

func passThrough(_ context.Context, records []models.Keyed, _ profile.Source, _ string, _ models.Organization) ([]models.Keyed, error) {
	return records, nil
}

type deps struct {
	searcher *xmocks.Searcher
	resolver *mocks.Resolver
	enricher *mocks.Enricher
	writer   *mocks.Writer
	logs     *bytes.Buffer
}

func newDeps(t *testing.T) deps {
	return deps{
		searcher: xmocks.NewSearcher(t),
		resolver: mocks.NewResolver(t),
		enricher: mocks.NewEnricher(t),
		writer:   mocks.NewWriter(t),
		logs:     &bytes.Buffer{},
	}
}

func (d deps) reconciler() *reconciler.Reconciler {
	logger := zerolog.New(d.logs)

	return reconciler.NewReconciler(
		registry,
		d.resolver,
		extractor.NewExtractor(d.searcher, nil, nil),
		d.enricher,
		d.writer,
		&logger,
		reconciler.WithClock(fakeClock{now: now}),
	)
}

func TestUnitRun(t *testing.T) {
	d := newDeps(t)

	d.resolver.On("Resolve", mock.Anything, identity.Query{Organization: "32"}).
		Return(models.Identity{Organization: org}, nil).Once()
	d.searcher.On("Search", mock.Anything, byUsername("puls")).Return(&models.SearchResult{
		Total: 2,
		Documents: []models.Document{
			document("2023-01-01T01:00:00.000Z", `{"Data":[{"ProductGuid":"p-1","Quantity":5}]}`),
			document("2023-01-01T01:20:00.000Z", `{"Data":[{"ProductGuid":"p-1","Quantity":4}]}`),
		},
	}, nil).Once()
	d.searcher.On("Search", mock.Anything, byUsername("aloe")).Return(&models.SearchResult{
		Total: 3,
		Documents: []models.Document{
			document("2023-01-01T00:50:00.000Z", `{"results":[{"product_id":"p-1","quantity":6,"price_type":"G1"}]}`),
			document("2023-01-01T01:10:00.000Z", `{"results":[`, func(d *models.Document) {
				d.Link = malformedLink
			}),
			document("2023-01-01T01:30:00.000Z", `{"results":[{"product_id":"p-1","quantity":4,"price_type":"G1"}]}`),
		},
	}, nil).Once()
	d.enricher.On("Apply", mock.Anything, mock.Anything, mock.Anything, "aloe", org).Return(passThrough).Twice()

	var written []models.Record
	d.writer.On(
		"Write",
		"stocks_data.csv",
		merge.Columns(models.LayoutStock1C, models.LayoutStockStandard, models.ColumnLink),
		mock.Anything,
	).Run(func(args mock.Arguments) {
		written = args.Get(2).([]models.Record)
	}).Return("d/stocks_data.csv", nil).Once()

	summary, err := d.reconciler().Run(context.Background(), reconciler.Request{
		Kind:         models.KindStocks,
		Marketplace:  "aloe",
		Organization: "32",
		End:          end,
	})

	require.NoError(t, err)
	assert.Equal(t, "d/stocks_data.csv", summary.Path)
	assert.Equal(t, 4, summary.Records)
	assert.Equal(t, org, summary.Identity.Organization)
	require.Len(t, summary.Legs, 2)
	assert.Equal(t, models.LegInternal, summary.Legs[0].Leg)
	assert.Equal(t, 0, summary.Legs[0].Skipped)
	assert.Equal(t, models.LegMarketplace, summary.Legs[1].Leg)
	assert.Equal(t, 1, summary.Legs[1].Skipped)
	assert.Equal(t, 3, summary.Legs[1].Stats.TotalHits)
	assert.Equal(t, 2, summary.Legs[1].Stats.Parsed)

	assert.Equal(t,
		[]string{"  e->", "->e  ", "->e  ", "  e->"},
		lo.Map(written, func(r models.Record, _ int) string { return r.Value(models.ColumnDirection) }),
	)
	assert.Equal(t,
		[]string{"6", "5", "4", "4"},
		lo.Map(written, func(r models.Record, _ int) string { return r.Value(models.ColumnQuantity) }),
	)

	logs := d.logs.String()
	assert.Contains(t, logs, `"message":"document skipped"`)
	assert.Contains(t, logs, malformedLink)
	assert.Contains(t, logs, `"message":"count mismatch, widen the window or raise the result cap"`)
	assert.Contains(t, logs, `"message":"report created"`)
}

func TestUnitRunOneLeg(t *testing.T) {
	d := newDeps(t)

	d.resolver.On("Resolve", mock.Anything, mock.Anything).Return(models.Identity{Organization: org}, nil).Once()
	d.searcher.On("Search", mock.Anything, byUsername("aloe")).Return(&models.SearchResult{
		Total: 1,
		Documents: []models.Document{
			document("2023-01-01T00:50:00.000Z", `{"results":[{"product_id":"p-1","quantity":6,"price_type":"G1"}]}`),
		},
	}, nil).Once()
	d.enricher.On("Apply", mock.Anything, mock.Anything, mock.Anything, "aloe", org).
		Return([]models.Keyed{}, nil).Once()
	d.writer.On("Write", "prices_data.csv", models.LayoutPriceStandard, []models.Record{}).
		Return("d/prices_data.csv", nil).Once()

	summary, err := d.reconciler().Run(context.Background(), reconciler.Request{
		Kind:         models.KindPrices,
		Marketplace:  "aloe",
		Organization: "32",
		End:          end,
		Legs:         []models.Leg{models.LegMarketplace},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Records)
	require.Len(t, summary.Legs, 1)
	assert.Equal(t, 1, summary.Legs[0].Filtered)
	assert.Contains(t, d.logs.String(), `"filter":"organization-by-secondary-lookup"`)
}

func TestUnitRunUnsupported(t *testing.T) {
	d := newDeps(t)

	_, err := d.reconciler().Run(context.Background(), reconciler.Request{
		Kind:         models.KindPrices,
		Marketplace:  "apteka_mos",
		Organization: "77",
		End:          end,
	})

	assert.ErrorIs(t, err, platform.ErrUnsupported)
}

func TestUnitRunWithoutOrganizationNorStore(t *testing.T) {
	tests := map[string]struct {
		marketplace  string
		organization string
	}{
		"blank organization": {
			marketplace:  "aloe",
			organization: "  ",
		},
		"client stream without identifiers": {
			marketplace: "ec_uteka",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := newDeps(t)
			logger := zerolog.New(d.logs)

			r := reconciler.NewReconciler(
				registry,
				identity.NewResolver(imocks.NewStorage(t)),
				extractor.NewExtractor(d.searcher, nil, nil),
				d.enricher,
				d.writer,
				&logger,
			)

			summary, err := r.Run(context.Background(), reconciler.Request{
				Kind:         models.KindStocks,
				Marketplace:  tt.marketplace,
				Organization: tt.organization,
				End:          end,
			})

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, platform.ErrNotFound)
			assert.ErrorContains(t, err, "organization or store")
		})
	}
}

func TestUnitRunErrors(t *testing.T) {
	tests := map[string]struct {
		marketplace string
		mock        func(d deps)
		wantErr     error
	}{
		"unknown marketplace": {
			marketplace: "unknown",
			mock:        func(d deps) {},
			wantErr:     platform.ErrNotFound,
		},
		"identity not found": {
			marketplace: "aloe",
			mock: func(d deps) {
				d.resolver.On("Resolve", mock.Anything, mock.Anything).
					Return(models.Identity{}, &platform.NotFoundError{Entity: "organization", Identifier: "32"}).Once()
			},
			wantErr: platform.ErrNotFound,
		},
		"log store unreachable": {
			marketplace: "aloe",
			mock: func(d deps) {
				d.resolver.On("Resolve", mock.Anything, mock.Anything).Return(models.Identity{Organization: org}, nil).Once()
				d.searcher.On("Search", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: %w", platform.ErrTransport, assert.AnError)).Once()
			},
			wantErr: platform.ErrTransport,
		},
		"lookup failure": {
			marketplace: "aloe",
			mock: func(d deps) {
				d.resolver.On("Resolve", mock.Anything, mock.Anything).Return(models.Identity{Organization: org}, nil).Once()
				d.searcher.On("Search", mock.Anything, mock.Anything).Return(&models.SearchResult{}, nil).Once()
				d.enricher.On("Apply", mock.Anything, mock.Anything, mock.Anything, "aloe", org).
					Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
		"report failure": {
			marketplace: "aloe",
			mock: func(d deps) {
				d.resolver.On("Resolve", mock.Anything, mock.Anything).Return(models.Identity{Organization: org}, nil).Once()
				d.searcher.On("Search", mock.Anything, mock.Anything).Return(&models.SearchResult{}, nil).Twice()
				d.enricher.On("Apply", mock.Anything, mock.Anything, mock.Anything, "aloe", org).Return(passThrough).Twice()
				d.writer.On("Write", "stocks_data.csv", mock.Anything, mock.Anything).Return("", assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := newDeps(t)
			tt.mock(d)

			summary, err := d.reconciler().Run(context.Background(), reconciler.Request{
				Kind:         models.KindStocks,
				Marketplace:  tt.marketplace,
				Organization: "32",
				End:          end,
			})

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnitRunVerbatim(t *testing.T) {
	d := newDeps(t)

	d.resolver.On("Resolve", mock.Anything, identity.Query{Store: "store-1", Verbatim: true}).
		Return(models.Identity{Store: &models.Store{GUID: "store-1"}}, nil).Once()
	d.searcher.On("Search", mock.Anything, mock.MatchedBy(func(q logquery.Query) bool {
		return q.Stream == logquery.StreamClient
	})).Return(&models.SearchResult{}, nil).Twice()
	d.enricher.On("Apply", mock.Anything, mock.Anything, mock.Anything, "ec_uteka", models.Organization{}).
		Return(passThrough).Twice()
	d.writer.On("Write", "stocks_data.csv", models.LayoutStockClient, []models.Record{}).Return("d/stocks_data.csv", nil).Once()

	_, err := d.reconciler().Run(context.Background(), reconciler.Request{
		Kind:        models.KindStocks,
		Marketplace: "ec_uteka",
		Store:       "store-1",
		End:         end,
	})

	require.NoError(t, err)
}
