// The parkgen command fabricates synthetic parking-location records and
// writes them to a JSON file for use as placeholder test data.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/parkgen/internal/config"
	"pkg.jsn.cam/parkgen/internal/logging"
	"pkg.jsn.cam/parkgen/internal/prompt"
)

// app carries the process-level collaborators so commands can be driven
// from tests.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	// lineReader opens the interactive input used for missing values.
	lineReader func() (prompt.LineReader, func() error)
	// logWriter overrides the configured log destination when set.
	logWriter io.Writer
	// terminal reports whether progress output should be drawn.
	terminal func() bool
}

func newApp() *app {
	return &app{
		lineReader: func() (prompt.LineReader, func() error) {
			l := liner.NewLiner()
			l.SetCtrlCAborts(true)
			return l, l.Close
		},
		terminal: stderrIsTerminal,
	}
}

// setup loads configuration and builds a logger tagged with a fresh run id.
func (a *app) setup() (*config.Config, *zap.Logger, error) {
	if err := config.LoadDotEnv(a.envFiles()...); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	var logger *zap.Logger
	if a.logWriter != nil {
		logger, err = logging.NewWithWriter(cfg.Log, a.logWriter)
	} else {
		logger, err = logging.New(cfg.Log)
	}
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.With(zap.String("run", uuid.New().String())), nil
}

func (a *app) envFiles() []string {
	if a.envFile == "" {
		return nil
	}
	return []string{a.envFile}
}

func (a *app) rootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "parkgen",
		Short: "Generate synthetic parking locations",
		Long:  "parkgen fabricates parking-lot records (name, coordinates, opening hours, prices, busy hours) and writes them to a JSON file.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a TOML config file")
	c.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Env file to load (default .env)")
	c.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override: debug, info, warn, error")

	c.AddCommand(a.generateCommand())
	c.AddCommand(a.generatorsCommand())
	c.AddCommand(a.inspectCommand())
	c.AddCommand(a.planCommand())

	return c
}

func main() {
	if err := newApp().rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
