// Command salesdemo records daily sales on a Fenwick tree and prints
// range totals for a scenario.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/caio/go-fenwick/internal/sales"
)

type config struct {
	LogLevel string `env:"LOG_LEVEL,default=info"`
	Seed     int64  `env:"SALESDEMO_SEED"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}

	app := newApp(cfg, os.Stdout, os.Stderr, newLogger(cfg, os.Stderr))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config, w io.Writer) logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = w
	if l, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(l)
	}
	return logger.WithField("app", "salesdemo")
}

func newApp(cfg config, out, errOut io.Writer, logger logrus.FieldLogger) *cli.App {
	app := cli.NewApp()
	app.Name = "salesdemo"
	app.Usage = "track daily sales and print range totals"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "scenario",
			Usage: "YAML scenario `FILE`; the built-in August 2025 scenario is used when empty",
		},
		cli.BoolFlag{
			Name:  "simulate",
			Usage: "record Poisson distributed sales for every catalog date before running queries",
		},
		cli.Float64Flag{
			Name:  "lambda",
			Value: 10,
			Usage: "mean daily quantity for --simulate",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: cfg.Seed,
			Usage: "random seed for --simulate",
		},
	}
	app.Action = func(c *cli.Context) error {
		return run(c, out, errOut, logger)
	}
	return app
}

func run(c *cli.Context, out, errOut io.Writer, logger logrus.FieldLogger) error {
	scenario := sales.DefaultScenario()
	if path := c.String("scenario"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "opening scenario")
		}
		defer f.Close()

		if scenario, err = sales.LoadScenario(f); err != nil {
			return errors.Wrap(err, path)
		}
	}

	catalog, err := scenario.Catalog()
	if err != nil {
		return err
	}
	logger.WithField("catalog", catalog.String()).Info("starting")

	ledger, err := sales.NewLedger(catalog,
		sales.WithLogger(logger),
		sales.WithWriter(out),
		sales.WithErrorWriter(errOut),
		sales.WithRNG(sales.NewPoissonRNG(c.Int64("seed"))),
	)
	if err != nil {
		return err
	}

	if c.Bool("simulate") {
		if err := ledger.Simulate(c.Float64("lambda")); err != nil {
			return err
		}
	}

	return scenario.Run(ledger)
}
