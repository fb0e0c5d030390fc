package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/ecom-reconciler/cmd/reconciler/config"
	"github.com/MichalMitros/ecom-reconciler/internal/logquery"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	"github.com/MichalMitros/ecom-reconciler/internal/reconciler"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options are flags shared by all record kinds.
type options struct {
	datetime     string
	marketplace  string
	organization string
	store        string
	product      string
	legs         []string
	out          string
}

func newRootCommand(logger *zerolog.Logger, registry *profile.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:   "reconciler",
		Short: "Reconcile stocks, prices and stores passed from the internal system through the platform to marketplaces",
		Long: "Reads records logged on both legs (internal system to platform, platform to marketplace),\n" +
			"keeps those of one organization or store and writes them in chronological order to a report.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newKindCommand(logger, registry, models.KindStocks, true,
			"./reconciler stocks -d 2022-11-26T12:00:00.000Z -m mailru -o спб -p 12345"),
		newKindCommand(logger, registry, models.KindPrices, true,
			"./reconciler prices -d 2022-11-26T12:00:00.000Z -m aloe -o 77"),
		newKindCommand(logger, registry, models.KindStores, false,
			"./reconciler stores -d 2022-11-26T12:00:00.000Z -m eapteka -s 85a2ef11-d2a9-48bf-ad7e-4309f05c9ec4"),
	)

	return root
}

func newKindCommand(logger *zerolog.Logger, registry *profile.Registry, kind models.Kind, withProduct bool, example string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     string(kind),
		Short:   fmt.Sprintf("Report %s of both legs in chronological order", kind),
		Example: example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.out != "" {
				cfg.ReportDir = opts.out
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("can't parse log level: %w", err)
			}
			*logger = logger.Level(level)

			loc, err := time.LoadLocation(cfg.Timezone)
			if err != nil {
				return fmt.Errorf("can't load timezone %s: %w", cfg.Timezone, err)
			}

			req, err := opts.request(kind, loc)
			if err != nil {
				return err
			}
			if err := supported(registry, req); err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, loc, registry, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.close(); err != nil {
					logger.Error().
						Err(err).
						Msg("can't release resources")
				}
			}()

			summary, err := a.reconciler.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created file %q\n", summary.Path)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.datetime, "datetime", "d", "", "end of the query window in platform-local time, i.e. 2022-04-05T01:58:45.430Z")
	flags.StringVarP(&opts.marketplace, "marketplace", "m", "", "marketplace name, one of: "+strings.Join(registry.Names(), ", "))
	flags.StringVarP(&opts.organization, "organization", "o", "", `organization name or its region code like "77"`)
	flags.StringVarP(&opts.store, "store", "s", "", `store guid like "85a2ef11-d2a9-48bf-ad7e-4309f05c9ec4" or id like "МСК000246759"`)
	if withProduct {
		flags.StringVarP(&opts.product, "product", "p", "", "product guid or code")
	}
	flags.StringSliceVar(&opts.legs, "legs", []string{string(models.LegInternal), string(models.LegMarketplace)}, "legs to read: 1c, mp")
	flags.StringVar(&opts.out, "out", "", "report directory, REPORT_DIR by default")

	_ = cmd.MarkFlagRequired("datetime")
	_ = cmd.MarkFlagRequired("marketplace")
	cmd.MarkFlagsMutuallyExclusive("organization", "store")
	cmd.MarkFlagsOneRequired("organization", "store")

	return cmd
}

func (o options) request(kind models.Kind, loc *time.Location) (reconciler.Request, error) {
	end, err := logquery.ParseInput(o.datetime, loc)
	if err != nil {
		return reconciler.Request{}, usageError{err}
	}

	legs, err := parseLegs(o.legs)
	if err != nil {
		return reconciler.Request{}, err
	}

	return reconciler.Request{
		Kind:         kind,
		Marketplace:  strings.ToLower(strings.TrimSpace(o.marketplace)),
		Organization: o.organization,
		Store:        o.store,
		Product:      o.product,
		End:          end,
		Legs:         legs,
	}, nil
}

// supported checks the marketplace and its record kind before any connection is opened.
func supported(registry *profile.Registry, req reconciler.Request) error {
	p, err := registry.For(req.Marketplace)
	if err != nil {
		return err
	}

	for _, leg := range req.Legs {
		if err := p.Supports(req.Kind, leg); err != nil {
			return err
		}
	}

	return nil
}

func parseLegs(values []string) ([]models.Leg, error) {
	legs := make([]models.Leg, 0, len(values))
	for _, v := range values {
		switch leg := models.Leg(strings.ToLower(strings.TrimSpace(v))); leg {
		case models.LegInternal, models.LegMarketplace:
			legs = append(legs, leg)
		default:
			return nil, usageError{fmt.Errorf("unknown leg %q, expected 1c or mp", v)}
		}
	}

	return legs, nil
}
