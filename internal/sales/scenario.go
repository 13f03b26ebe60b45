package sales

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Sale is a quantity sold on a date.
type Sale struct {
	Date     string `yaml:"date"`
	Quantity int64  `yaml:"quantity"`
}

// Query asks for the total sales between two dates, inclusive. A
// non-empty Title is printed as a section header before the result.
type Query struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Title string `yaml:"title"`
}

// Scenario describes a catalog, the sales to record on it and the
// queries to print afterwards. The catalog is either an explicit list
// of dates or Days consecutive days from Start.
type Scenario struct {
	Start   string   `yaml:"start"`
	Days    int      `yaml:"days"`
	Dates   []string `yaml:"dates"`
	Sales   []Sale   `yaml:"sales"`
	Queries []Query  `yaml:"queries"`
}

// LoadScenario decodes a YAML scenario. Unknown fields are rejected.
func LoadScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding scenario")
	}
	return &s, nil
}

// DefaultScenario returns ten days of August 2025 with a handful of
// sales, three valid range queries and one query past the catalog end.
func DefaultScenario() *Scenario {
	return &Scenario{
		Start: "2025-08-01",
		Days:  10,
		Sales: []Sale{
			{"2025-08-01", 5},
			{"2025-08-02", 8},
			{"2025-08-05", 12},
			{"2025-08-07", 3},
			{"2025-08-10", 10},
		},
		Queries: []Query{
			{From: "2025-08-01", To: "2025-08-01"},
			{From: "2025-08-01", To: "2025-08-05"},
			{From: "2025-08-01", To: "2025-08-10"},
			{From: "2025-08-06", To: "2025-08-10"},
			{From: "2025-08-01", To: "2025-08-15", Title: "Attempting invalid query"},
		},
	}
}

// Catalog builds the catalog described by the scenario.
func (s *Scenario) Catalog() (*Catalog, error) {
	if len(s.Dates) > 0 {
		return NewCatalog(s.Dates...)
	}

	start, err := time.Parse(DateLayout, s.Start)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scenario start %q", s.Start)
	}
	if s.Days < 0 {
		return nil, errors.Errorf("scenario days must be >= 0, got %d", s.Days)
	}
	return DailyCatalog(start, s.Days), nil
}

// Run records the scenario sales on l, then prints every query under a
// "Query results:" header.
func (s *Scenario) Run(l *Ledger) error {
	if _, err := fmt.Fprintln(l.out, "Updating sales data..."); err != nil {
		return errors.Wrap(err, "printing scenario")
	}
	if err := s.recordSales(l); err != nil {
		return err
	}
	if _, err := fmt.Fprint(l.out, "\nQuery results:\n"); err != nil {
		return errors.Wrap(err, "printing scenario")
	}
	for _, q := range s.Queries {
		if q.Title != "" {
			if _, err := fmt.Fprintf(l.out, "\n%s:\n", q.Title); err != nil {
				return errors.Wrap(err, "printing scenario")
			}
		}
		if err := l.PrintQuery(q.From, q.To); err != nil {
			return errors.Wrap(err, "printing query")
		}
	}
	return nil
}

func (s *Scenario) recordSales(l *Ledger) error {
	for _, sale := range s.Sales {
		if err := l.Record(sale.Date, sale.Quantity); err != nil {
			return err
		}
	}
	return nil
}
