// Package sales tracks daily sale quantities over a catalog of dates
// using a Fenwick tree, and prints range totals.
package sales

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/caio/go-fenwick"
)

// Ledger records sales per catalog date and answers range queries.
// It is not safe for concurrent use.
type Ledger struct {
	catalog *Catalog
	tree    *fenwick.Tree
	logger  logrus.FieldLogger
	rng     SalesRNG
	out     io.Writer
	errOut  io.Writer
}

// NewLedger creates an empty ledger with one slot per catalog date.
func NewLedger(catalog *Catalog, options ...ledgerOption) (*Ledger, error) {
	if catalog == nil {
		return nil, errors.New("sales: nil catalog")
	}

	l := &Ledger{
		catalog: catalog,
		tree:    fenwick.New(catalog.Len()),
		logger:  logrus.StandardLogger(),
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	for _, option := range options {
		option(l)
	}
	if l.rng == nil {
		l.rng = NewPoissonRNG(time.Now().UnixNano())
	}

	l.logger = l.logger.WithFields(logrus.Fields{
		"component":    "sales",
		"catalog_size": catalog.Len(),
	})
	return l, nil
}

// Catalog returns the catalog the ledger was created with.
func (l *Ledger) Catalog() *Catalog {
	return l.catalog
}

// Record adds quantity to the sales of date. Negative quantities are
// accepted and act as returns.
func (l *Ledger) Record(date string, quantity int64) error {
	idx, ok := l.catalog.Index(date)
	if !ok {
		return errors.Wrapf(ErrUnknownDate, "record %s", date)
	}
	if err := l.tree.Update(idx, quantity); err != nil {
		return errors.Wrapf(err, "record %s", date)
	}
	l.logger.WithFields(logrus.Fields{
		"date":     date,
		"quantity": quantity,
	}).Debug("recorded sale")
	return nil
}

// span resolves both dates before anything reaches the tree.
func (l *Ledger) span(from, to string) (int, int, error) {
	left, ok := l.catalog.Index(from)
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownDate, "query start %s", from)
	}
	right, ok := l.catalog.Index(to)
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownDate, "query end %s", to)
	}
	return left, right, nil
}

// Total returns the sales from date from to date to, inclusive.
func (l *Ledger) Total(from, to string) (int64, error) {
	left, right, err := l.span(from, to)
	if err != nil {
		return 0, err
	}
	return l.tree.RangeSum(left, right)
}

// Average returns the mean daily sales from date from to date to,
// inclusive.
func (l *Ledger) Average(from, to string) (float64, error) {
	left, right, err := l.span(from, to)
	if err != nil {
		return 0, err
	}
	total, err := l.tree.RangeSum(left, right)
	if err != nil {
		return 0, err
	}
	return float64(total) / float64(right-left+1), nil
}

// StdDev returns the sample standard deviation of daily sales from date
// from to date to, inclusive. Unlike Total and Average it reads every
// day in the range, so it costs O(k log n) for k days. A single-day
// range yields NaN.
func (l *Ledger) StdDev(from, to string) (float64, error) {
	left, right, err := l.span(from, to)
	if err != nil {
		return 0, err
	}
	if left > right {
		_, err := l.tree.RangeSum(left, right)
		return 0, err
	}

	daily := make([]float64, 0, right-left+1)
	for i := left; i <= right; i++ {
		v, err := l.tree.Get(i)
		if err != nil {
			return 0, err
		}
		daily = append(daily, float64(v))
	}
	return stat.StdDev(daily, nil), nil
}

// PrintQuery writes the total sales between two dates. Invalid queries
// are logged and reported on the error writer instead of failing; the
// returned error is only set when writing fails.
func (l *Ledger) PrintQuery(from, to string) error {
	total, err := l.Total(from, to)
	switch {
	case err == nil:
		_, err = fmt.Fprintf(l.out, "Total sales from %s to %s: %d\n", from, to, total)
		return err
	case errors.Is(err, ErrUnknownDate):
		l.logger.WithError(err).Warn("rejected query")
		_, err = fmt.Fprintf(l.errOut, "Invalid date(s) for query: %s to %s\n", from, to)
		return err
	default:
		l.logger.WithError(err).Warn("rejected query")
		_, err = fmt.Fprintf(l.errOut, "Invalid range for query: %s to %s\n", from, to)
		return err
	}
}

// Simulate records a random quantity with mean lambda for every date in
// the catalog.
func (l *Ledger) Simulate(lambda float64) error {
	if lambda <= 0 {
		return errors.Errorf("sales: lambda must be > 0, got %g", lambda)
	}
	for i := 1; i <= l.catalog.Len(); i++ {
		date, _ := l.catalog.Date(i)
		if err := l.Record(date, l.rng.Quantity(lambda)); err != nil {
			return err
		}
	}
	l.logger.WithField("total", l.tree.Total()).Info("simulated sales")
	return nil
}
