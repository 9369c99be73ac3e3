package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/parkgen/internal/inspect"
	"pkg.jsn.cam/parkgen/pkg/output"
)

var errNoRecords = errors.New("no records in input file")

const timeLayout = "2006-01-02 15:04"

type inspectFlags struct {
	file     string
	lat, lon float64
	radius   float64
	at       string
	hours    float64
	prefer   string
	openOnly bool
	limit    int
}

func (a *app) inspectCommand() *cobra.Command {
	f := &inspectFlags{}

	c := &cobra.Command{
		Use:   "inspect",
		Short: "List generated lots near a point with their open, busy and cost status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, f)
		},
	}

	c.Flags().StringVarP(&f.file, "file", "f", "", "Records file (defaults to the configured output)")
	c.Flags().Float64Var(&f.lat, "lat", 0, "Target latitude")
	c.Flags().Float64Var(&f.lon, "lon", 0, "Target longitude")
	c.Flags().Float64VarP(&f.radius, "radius", "r", 1000, "Search radius in meters")
	c.Flags().StringVar(&f.at, "at", "", "Local time to evaluate, \""+timeLayout+"\" (default now)")
	c.Flags().Float64Var(&f.hours, "hours", 2, "Intended stay in hours, for cost estimates")
	c.Flags().StringVar(&f.prefer, "prefer", string(inspect.PreferClosest), "Ordering: closest or cheap")
	c.Flags().BoolVar(&f.openOnly, "open-only", false, "Only list lots open at the given time")
	c.Flags().IntVar(&f.limit, "limit", 10, "Maximum number of lots to list (0 for all)")
	c.MarkFlagRequired("lat")
	c.MarkFlagRequired("lon")

	return c
}

func (a *app) runInspect(cmd *cobra.Command, f *inspectFlags) error {
	cfg, logger, err := a.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("inspect")

	path := cfg.Output
	if f.file != "" {
		path = f.file
	}

	at := time.Now()
	if f.at != "" {
		at, err = time.ParseInLocation(timeLayout, f.at, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at %q: %w", f.at, err)
		}
	}

	records, err := output.ReadFile(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", errNoRecords, path)
	}

	results, skipped, err := inspect.Find(records, inspect.Query{
		Lat:          f.lat,
		Lon:          f.lon,
		RadiusMeters: f.radius,
		At:           at,
		Hours:        f.hours,
		Prefer:       inspect.Preference(f.prefer),
		OpenOnly:     f.openOnly,
		Limit:        f.limit,
	})
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Warn("skipped records with malformed schedules", zap.Int("skipped", skipped))
	}
	log.Debug("inspected records",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("matches", len(results)),
	)

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintf(out, "No parking within %s of %.6f, %.6f\n", humanize.SIWithDigits(f.radius, 1, "m"), f.lat, f.lon)
		return nil
	}

	fmt.Fprintf(out, "%-36s %10s %-6s %-5s %s\n", "NAME", "DISTANCE", "OPEN", "BUSY", "EST. COST")
	fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-36s %10s %-6s %-5s £%.2f\n",
			r.Record.Name,
			humanize.SIWithDigits(r.DistanceMeters, 0, "m"),
			yesNo(r.Open),
			yesNo(r.Busy),
			r.Cost,
		)
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
