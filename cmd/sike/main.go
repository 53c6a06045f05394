package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/doubleodd/go-sike/sike"
)

var Version = "DEV"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sike: %v\n", err)
		os.Exit(1)
	}
}

// state is filled by the Before hook and shared by all command actions.
type state struct {
	cfg    *Config
	params *sike.Params
	log    *zerolog.Logger
}

func newApp(stdout, stderr io.Writer) *cli.App {
	st := &state{}
	return &cli.App{
		Name:      "sike",
		Usage:     "SIKE key encapsulation tool",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    paramsFlag,
				Usage:   "Parameter set (" + strings.Join(sike.Names(), ", ") + ")",
				Value:   defaultParams,
				EnvVars: []string{"SIKE_PARAMS"},
			},
			&cli.IntFlag{
				Name:    workersFlag,
				Usage:   "Number of worker goroutines for batch operations (0 for one per CPU)",
				EnvVars: []string{"SIKE_WORKERS"},
			},
			&cli.StringFlag{
				Name:    logLevelFlag,
				Usage:   "Application logging level {debug, info, warn, error, fatal}",
				Value:   defaultLogLevel,
				EnvVars: []string{"SIKE_LOGLEVEL"},
			},
			&cli.StringFlag{
				Name:    configFlag,
				Usage:   "Path to a YAML configuration file",
				EnvVars: []string{"SIKE_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			return st.setup(c, stderr)
		},
		Commands: []*cli.Command{
			st.keygenCommand(),
			st.encapsCommand(),
			st.decapsCommand(),
			st.benchCommand(),
		},
	}
}

func (st *state) setup(c *cli.Context, logOut io.Writer) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}
	st.log = newLogger(logOut, cfg.LogLevel)
	params, err := cfg.params()
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.params = params
	logf := func(format string, args ...interface{}) {
		st.log.Debug().Msgf(format, args...)
	}
	if _, err := maxprocs.Set(maxprocs.Logger(logf)); err != nil {
		st.log.Warn().Err(err).Msg("cannot adjust GOMAXPROCS")
	}
	st.log.Debug().
		Str("params", params.Name).
		Int("workers", cfg.Workers).
		Msg("configuration loaded")
	return nil
}
