package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/parkgen/internal/inspect"
	"pkg.jsn.cam/parkgen/internal/plan"
	"pkg.jsn.cam/parkgen/pkg/output"
)

var errNoHome = errors.New("no home location: set --home-lat and --home-lon or a [home] table")

type planFlags struct {
	file             string
	events           string
	homeLat, homeLon float64
	radius           float64
	prefer           string
}

func (a *app) planCommand() *cobra.Command {
	f := &planFlags{}

	c := &cobra.Command{
		Use:   "plan",
		Short: "Plan where to park for a day of events",
		Long: `Plan where to park for a day of events.

Events are read from a TOML file of [[event]] tables (title, lat, lon,
start, end) with an optional [home] table (lat, lon). Lots whose
description advertises a free-parking limit, e.g. "2 hour free", get a
move step when the stay runs past it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, f)
		},
	}

	c.Flags().StringVarP(&f.file, "file", "f", "", "Records file (defaults to the configured output)")
	c.Flags().StringVarP(&f.events, "events", "e", "", "Events TOML file")
	c.Flags().Float64Var(&f.homeLat, "home-lat", 0, "Starting latitude (overrides [home])")
	c.Flags().Float64Var(&f.homeLon, "home-lon", 0, "Starting longitude (overrides [home])")
	c.Flags().Float64VarP(&f.radius, "radius", "r", 1000, "Search radius around each event in meters")
	c.Flags().StringVar(&f.prefer, "prefer", string(inspect.PreferClosest), "Lot choice: closest or cheap")
	c.MarkFlagRequired("events")

	return c
}

func (a *app) runPlan(cmd *cobra.Command, f *planFlags) error {
	cfg, logger, err := a.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("plan")

	events, home, haveHome, err := plan.LoadEvents(f.events)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("home-lat") && flags.Changed("home-lon"):
		home = plan.Point{Lat: f.homeLat, Lon: f.homeLon}
	case flags.Changed("home-lat") || flags.Changed("home-lon"):
		return errors.New("--home-lat and --home-lon must be set together")
	case !haveHome:
		return errNoHome
	}

	path := cfg.Output
	if f.file != "" {
		path = f.file
	}
	records, err := output.ReadFile(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", errNoRecords, path)
	}

	steps, err := plan.Timeline(records, home, events, plan.Options{
		RadiusMeters: f.radius,
		Prefer:       inspect.Preference(f.prefer),
	})
	if err != nil {
		return err
	}
	log.Debug("planned events",
		zap.String("events", f.events),
		zap.Int("count", len(events)),
		zap.Int("steps", len(steps)),
	)

	out := cmd.OutOrStdout()
	if len(steps) == 0 {
		fmt.Fprintln(out, "No events to plan")
		return nil
	}

	fmt.Fprintf(out, "%-9s %-9s %-36s %s\n", "TIME", "STEP", "TITLE", "DETAILS")
	fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────────────")
	for _, s := range steps {
		details := s.Description
		if s.Kind == plan.KindPark {
			details = fmt.Sprintf("%s (est. £%.2f)", details, s.Cost)
		}
		fmt.Fprintf(out, "%-9s %-9s %-36s %s\n", s.Time.Format("Mon 15:04"), s.Kind, s.Title, details)
	}
	fmt.Fprintf(out, "\nEstimated parking cost: £%.2f over %s events\n", plan.TotalCost(steps), humanize.Comma(int64(len(events))))

	return nil
}
