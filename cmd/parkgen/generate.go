package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/parkgen/internal/config"
	"pkg.jsn.cam/parkgen/internal/prompt"
	"pkg.jsn.cam/parkgen/pkg/generator"
	"pkg.jsn.cam/parkgen/pkg/output"
	"pkg.jsn.cam/parkgen/pkg/parking"
)

type generateFlags struct {
	count      int
	mode       string
	generator  string
	output     string
	seed       uint64
	noProgress bool
}

func (a *app) generateCommand() *cobra.Command {
	f := &generateFlags{}

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate parking records and write them to the output file",
		Long: `Generate parking records and write them to the output file.

The record count and write mode are prompted for when not given as flags.
An empty count takes the generator's default (see "parkgen generators").
The output file is always overwritten; append mode is accepted but not honored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f)
		},
	}

	c.Flags().IntVarP(&f.count, "count", "n", 0, "Number of records to generate")
	c.Flags().StringVarP(&f.mode, "mode", "m", "", "Write mode: w (write) or a (add)")
	c.Flags().StringVarP(&f.generator, "generator", "g", "", "Generator to use (see `parkgen generators`)")
	c.Flags().StringVarP(&f.output, "output", "o", "", "Output JSON file path")
	c.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed; 0 picks a fresh seed each run")
	c.Flags().BoolVar(&f.noProgress, "no-progress", false, "Disable the progress bar")

	return c
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	cfg, logger, err := a.setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := applyGenerateFlags(cmd, cfg, f); err != nil {
		return err
	}

	g, err := generator.New(cfg.GeneratorOptions())
	if err != nil {
		return err
	}

	mode, count, err := a.resolveModeAndCount(cmd, f, g.DefaultCount())
	if err != nil {
		return err
	}

	if prompt.WriteMode(mode) == prompt.ModeAppend {
		logger.Warn("append mode requested; output file will be overwritten", zap.String("output", cfg.Output))
	}

	g.Init(generator.NewRand(cfg.Seed))

	genLog := logger.Named("generator")
	genLog.Debug("generating records",
		zap.String("generator", cfg.Mode),
		zap.Int("count", count),
		zap.Uint64("seed", cfg.Seed),
	)

	start := time.Now()
	records := a.generate(cmd.ErrOrStderr(), g, count, f.noProgress)
	genLog.Info("generated records", zap.Int("count", len(records)), zap.Duration("took", time.Since(start)))

	size, err := output.WriteFile(cfg.Output, records)
	if err != nil {
		logger.Named("output").Error("write failed", zap.String("path", cfg.Output), zap.Error(err))
		return err
	}
	logger.Named("output").Info("wrote output", zap.String("path", cfg.Output), zap.Int64("bytes", size))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s parking records\n", humanize.Comma(int64(len(records))))
	fmt.Fprintf(out, "  Generator: %s\n", cfg.Mode)
	fmt.Fprintf(out, "  Output:    %s\n", cfg.Output)
	fmt.Fprintf(out, "  Size:      %s\n", humanize.Bytes(uint64(size)))

	return nil
}

// applyGenerateFlags layers explicitly set flags over the loaded config.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, f *generateFlags) error {
	flags := cmd.Flags()
	if flags.Changed("generator") {
		cfg.Mode = f.generator
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	return cfg.Validate()
}

// resolveModeAndCount takes the write mode and record count from flags,
// prompting for whichever is missing. Empty count input takes defaultCount.
func (a *app) resolveModeAndCount(cmd *cobra.Command, f *generateFlags, defaultCount int) (string, int, error) {
	modeReq := prompt.ModeRequest()
	countReq := prompt.CountRequest(defaultCount)

	haveMode := cmd.Flags().Changed("mode")
	haveCount := cmd.Flags().Changed("count")

	if haveMode && !modeReq.Rule.Accept(f.mode) {
		return "", 0, fmt.Errorf("invalid --mode %q: %s", f.mode, modeReq.Rule.Description)
	}
	if haveCount && !countReq.Rule.Accept(f.count) {
		return "", 0, fmt.Errorf("invalid --count %d: %s", f.count, countReq.Rule.Description)
	}
	if haveMode && haveCount {
		return f.mode, f.count, nil
	}

	in, closeIn := a.lineReader()
	defer closeIn()
	p := prompt.New(in, cmd.ErrOrStderr())

	mode, count := f.mode, f.count
	var err error
	if !haveMode {
		if mode, err = prompt.Ask(p, modeReq); err != nil {
			return "", 0, err
		}
	}
	if !haveCount {
		if count, err = prompt.Ask(p, countReq); err != nil {
			return "", 0, err
		}
	}

	return mode, count, nil
}

// generate runs the generator, drawing a progress bar on w when it is a terminal.
func (a *app) generate(w io.Writer, g generator.Generator, count int, noProgress bool) []parking.Record {
	if noProgress || !a.terminal() {
		return generator.Generate(g, count)
	}

	bar := progressbar.NewOptions(count,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	records := make([]parking.Record, 0, count)
	generator.Each(g, count, func(_ int, rec parking.Record) {
		records = append(records, rec)
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	return records
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
