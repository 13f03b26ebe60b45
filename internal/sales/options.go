package sales

import (
	"io"

	"github.com/sirupsen/logrus"
)

type ledgerOption func(*Ledger)

// WithLogger sets the logger used to report rejected records and
// queries. Defaults to the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) ledgerOption {
	if logger == nil {
		panic("Logger must not be nil")
	}
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithRNG sets the source of quantities used by Simulate.
func WithRNG(r SalesRNG) ledgerOption {
	if r == nil {
		panic("RNG must not be nil")
	}
	return func(l *Ledger) {
		l.rng = r
	}
}

// WithWriter sets where PrintQuery writes its results. Defaults to
// os.Stdout.
func WithWriter(w io.Writer) ledgerOption {
	if w == nil {
		panic("Writer must not be nil")
	}
	return func(l *Ledger) {
		l.out = w
	}
}

// WithErrorWriter sets where PrintQuery reports rejected queries.
// Defaults to os.Stderr.
func WithErrorWriter(w io.Writer) ledgerOption {
	if w == nil {
		panic("Writer must not be nil")
	}
	return func(l *Ledger) {
		l.errOut = w
	}
}
