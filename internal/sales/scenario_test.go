package sales

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()

	catalog, err := s.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 10, catalog.Len())

	l, out, errOut, _ := newTestLedger(t)
	require.NoError(t, s.Run(l))

	expected := strings.Join([]string{
		"Updating sales data...",
		"",
		"Query results:",
		"Total sales from 2025-08-01 to 2025-08-01: 5",
		"Total sales from 2025-08-01 to 2025-08-05: 25",
		"Total sales from 2025-08-01 to 2025-08-10: 38",
		"Total sales from 2025-08-06 to 2025-08-10: 13",
		"",
		"Attempting invalid query:",
	}, "\n") + "\n"
	assert.Equal(t, expected, out.String())
	assert.Equal(t, "Invalid date(s) for query: 2025-08-01 to 2025-08-15\n", errOut.String())
}

func TestDefaultScenarioIsFresh(t *testing.T) {
	a := DefaultScenario()
	a.Sales[0].Quantity = 1000

	assert.Equal(t, int64(5), DefaultScenario().Sales[0].Quantity)
}

func TestLoadScenario(t *testing.T) {
	doc := `
dates: ["2024-01-03", "2024-01-01", "2024-01-02"]
sales:
  - date: "2024-01-01"
    quantity: 4
  - date: "2024-01-03"
    quantity: 6
queries:
  - from: "2024-01-01"
    to: "2024-01-03"
  - from: "2024-01-02"
    to: "2024-01-03"
`
	s, err := LoadScenario(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, s.Sales, 2)
	require.Len(t, s.Queries, 2)

	catalog, err := s.Catalog()
	require.NoError(t, err)

	var out strings.Builder
	l, err := NewLedger(catalog, WithWriter(&out), WithRNG(fixedRNG(0)))
	require.NoError(t, err)
	require.NoError(t, s.Run(l))

	assert.Equal(t,
		"Updating sales data...\n\nQuery results:\n"+
			"Total sales from 2024-01-01 to 2024-01-03: 10\n"+
			"Total sales from 2024-01-02 to 2024-01-03: 6\n",
		out.String())
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	_, err := LoadScenario(strings.NewReader("start: \"2025-08-01\"\nweeks: 2\n"))
	assert.Error(t, err)
}

func TestScenarioCatalogErrors(t *testing.T) {
	_, err := (&Scenario{Start: "August", Days: 3}).Catalog()
	assert.Error(t, err)

	_, err = (&Scenario{Start: "2025-08-01", Days: -1}).Catalog()
	assert.Error(t, err)

	_, err = (&Scenario{Dates: []string{"2025-08-01", "2025-08-01"}}).Catalog()
	assert.Error(t, err)
}

func TestScenarioRunStopsOnUnknownSale(t *testing.T) {
	s := &Scenario{
		Start: "2025-08-01",
		Days:  2,
		Sales: []Sale{{"2025-08-15", 1}},
	}
	l, _, _, _ := newTestLedger(t)
	err := s.Run(l)
	assert.ErrorIs(t, err, ErrUnknownDate)
}
