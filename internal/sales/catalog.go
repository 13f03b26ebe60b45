package sales

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the only date format accepted by a Catalog.
const DateLayout = "2006-01-02"

// ErrUnknownDate is returned when a date is not part of the catalog.
var ErrUnknownDate = errors.New("sales: date not in catalog")

// Catalog maps calendar dates to the 1-based indices of a sales tree.
// Dates are kept sorted, so index order is chronological order.
type Catalog struct {
	dates []string
}

// NewCatalog creates a catalog holding the given dates. Every date must
// be formatted as DateLayout and appear only once.
func NewCatalog(dates ...string) (*Catalog, error) {
	c := &Catalog{dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		if err := c.add(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DailyCatalog creates a catalog of days consecutive dates starting at
// start. A negative days yields an empty catalog.
func DailyCatalog(start time.Time, days int) *Catalog {
	if days < 0 {
		days = 0
	}
	c := &Catalog{dates: make([]string, 0, days)}
	for i := 0; i < days; i++ {
		c.dates = append(c.dates, start.AddDate(0, 0, i).Format(DateLayout))
	}
	return c
}

func (c *Catalog) add(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errors.Wrapf(err, "invalid catalog date %q", date)
	}

	idx := c.search(date)
	if idx < len(c.dates) && c.dates[idx] == date {
		return errors.Errorf("duplicate catalog date %s", date)
	}

	c.dates = append(c.dates, "")
	copy(c.dates[idx+1:], c.dates[idx:])
	c.dates[idx] = date
	return nil
}

func (c *Catalog) search(date string) int {
	return sort.SearchStrings(c.dates, date)
}

// Len returns the number of dates in the catalog.
func (c *Catalog) Len() int {
	return len(c.dates)
}

// Index returns the 1-based index of date.
func (c *Catalog) Index(date string) (int, bool) {
	idx := c.search(date)
	if idx < len(c.dates) && c.dates[idx] == date {
		return idx + 1, true
	}
	return 0, false
}

// Date returns the date stored at the 1-based index.
func (c *Catalog) Date(index int) (string, bool) {
	if index < 1 || index > len(c.dates) {
		return "", false
	}
	return c.dates[index-1], true
}

// Dates returns a copy of the catalog dates in order.
func (c *Catalog) Dates() []string {
	return append([]string{}, c.dates...)
}

func (c *Catalog) String() string {
	if len(c.dates) == 0 {
		return "Catalog(size=0)"
	}
	return fmt.Sprintf("Catalog(size=%d, %s..%s)", len(c.dates), c.dates[0], c.dates[len(c.dates)-1])
}
