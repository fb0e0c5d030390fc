package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/MichalMitros/ecom-reconciler/cmd/reconciler/config"
	"github.com/MichalMitros/ecom-reconciler/internal/enrich"
	"github.com/MichalMitros/ecom-reconciler/internal/extractor"
	"github.com/MichalMitros/ecom-reconciler/internal/fetcher"
	"github.com/MichalMitros/ecom-reconciler/internal/identity"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/search"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/storage"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/MichalMitros/ecom-reconciler/internal/reconciler"
	"github.com/MichalMitros/ecom-reconciler/internal/report"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// app holds connections opened for a single run.
type app struct {
	reconciler *reconciler.Reconciler

	db    *sql.DB
	feeds *fetcher.Fetcher
}

// newApp wires all collaborators. The database is pinged, other connections are opened lazily by their clients.
func newApp(
	ctx context.Context,
	cfg config.Config,
	loc *time.Location,
	registry *profile.Registry,
	logger *zerolog.Logger,
) (*app, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}
	postgres := storage.NewPostgres(db, storage.WithQueryTimeout(cfg.DatabaseQueryTimeout))
	if err := postgres.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Elasticsearch.URLs,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Transport: &http.Transport{
			ResponseHeaderTimeout: cfg.Elasticsearch.Timeout,
		},
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can't create elasticsearch client: %w", err)
	}
	searcher := search.NewClient(es, search.Config{
		APMIndex:    cfg.Elasticsearch.APMIndex,
		ClientIndex: cfg.Elasticsearch.ClientIndex,
		APMLink:     cfg.Audit.APMLink,
		ClientLink:  cfg.Audit.ClientLink,
		Timeout:     cfg.Elasticsearch.Timeout,
	})

	feeds := fetcher.NewFetcher(cfg.FTP.Host, cfg.FTP.Timeout, feedAccounts(cfg.FTP))

	ext := extractor.NewExtractor(searcher, feeds, postgres,
		extractor.WithLocation(loc),
		extractor.WithTruncationPolicy(extractor.TruncationPolicy(cfg.Elasticsearch.TruncationPolicy)),
		extractor.WithMaxHits(cfg.Elasticsearch.MaxHits),
	)

	rec := reconciler.NewReconciler(
		registry,
		identity.NewResolver(postgres),
		ext,
		enrich.NewEnricher(postgres, enrich.WithChunkSize(cfg.LookupChunkSize)),
		report.NewWriter(cfg.ReportDir),
		logger,
	)

	return &app{
		reconciler: rec,
		db:         db,
		feeds:      feeds,
	}, nil
}

// close releases the database pool and feed server connections.
func (a *app) close() error {
	var g errgroup.Group

	g.Go(a.db.Close)
	g.Go(a.feeds.Close)

	return g.Wait()
}

func feedAccounts(cfg config.FTP) map[string]fetcher.Credentials {
	return map[string]fetcher.Credentials{
		profile.FeedAccountSbermm: {User: cfg.SbermmUser, Password: cfg.SbermmPassword},
		profile.FeedAccountYandex: {User: cfg.YandexUser, Password: cfg.YandexPassword},
	}
}
