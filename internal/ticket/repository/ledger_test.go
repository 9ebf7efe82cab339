package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-terminal/internal/model"
)

func newTestLedger(t *testing.T) *LedgerRepository {
	t.Helper()
	return NewLedgerRepository(filepath.Join(t.TempDir(), "transactions.csv"))
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.ParseInLocation(DateLayout, "2026-08-31 14:03:22", time.Local)
	require.NoError(t, err)
	return date
}

func TestLedger_AppendWritesExactFormat(t *testing.T) {
	ledger := newTestLedger(t)
	err := ledger.Append(&model.Ticket{
		ID:    1001,
		Agent: "maria",
		Date:  testDate(t),
		Total: 14.49,
		Lines: []model.TicketLine{
			{Name: "Ground Coffee 250g", Price: 9.99},
			{Name: "Tea", Price: 4.50},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(ledger.path)
	require.NoError(t, err)
	want := "Ticket 1001, Agent: maria, Date: 2026-08-31 14:03:22, Total: 14.49\n" +
		"  Ground Coffee 250g, 9.99\n" +
		"  Tea, 4.50\n"
	assert.Equal(t, want, string(data))
}

func TestLedger_ListParsesHeaders(t *testing.T) {
	ledger := newTestLedger(t)
	date := testDate(t)
	for i := 0; i < 3; i++ {
		err := ledger.Append(&model.Ticket{
			ID:    1001 + i,
			Agent: "X",
			Date:  date,
			Total: 4.50,
			Lines: []model.TicketLine{{Name: "Tea", Price: 4.50}},
		})
		require.NoError(t, err)
	}

	summaries, err := ledger.List()
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, 1001, summaries[0].ID)
	assert.Equal(t, 1003, summaries[2].ID)
	assert.Equal(t, "X", summaries[0].Agent)
	assert.True(t, date.Equal(summaries[0].Date))
	assert.InDelta(t, 4.50, summaries[0].Total, 1e-9)
}

func TestLedger_MissingFileReadsAsEmpty(t *testing.T) {
	ledger := newTestLedger(t)

	summaries, err := ledger.List()
	require.NoError(t, err)
	assert.Empty(t, summaries)

	detail, err := ledger.Detail(1001)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestLedger_DetailCollectsLinesBetweenHeaders(t *testing.T) {
	ledger := newTestLedger(t)
	date := testDate(t)
	require.NoError(t, ledger.Append(&model.Ticket{
		ID: 1001, Agent: "X", Date: date, Total: 9.99,
		Lines: []model.TicketLine{{Name: "Coffee", Price: 9.99}},
	}))
	require.NoError(t, ledger.Append(&model.Ticket{
		ID: 1002, Agent: "Y", Date: date, Total: 7.25,
		Lines: []model.TicketLine{
			{Name: "Bread", Price: 2.75},
			{Name: "Milk, whole", Price: 4.50},
		},
	}))

	detail, err := ledger.Detail(1002)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Y", detail.Agent)
	require.Len(t, detail.Lines, 2)
	assert.Equal(t, "Bread", detail.Lines[0].Name)
	assert.Equal(t, "Milk, whole", detail.Lines[1].Name)
	assert.InDelta(t, 4.50, detail.Lines[1].Price, 1e-9)

	missing, err := ledger.Detail(4242)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestParseHeader_Grammar(t *testing.T) {
	summary, ok, err := parseHeader("Ticket 1001, Agent: X, Date: 2026-08-31 14:03:22, Total: 4.50")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1001, summary.ID)
	assert.Equal(t, "X", summary.Agent)
	assert.InDelta(t, 4.50, summary.Total, 1e-9)

	// Item lines are not headers and not errors.
	_, ok, err = parseHeader("  Tea, 4.50")
	require.NoError(t, err)
	assert.False(t, ok)

	// A line that claims to be a header but breaks the grammar is an
	// explicit failure, not a silent skip.
	_, _, err = parseHeader("Ticket one, Agent: X, Date: whenever, Total: lots")
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestLedger_ListCapsAtMaxTickets(t *testing.T) {
	ledger := newTestLedger(t)
	file, err := os.Create(ledger.path)
	require.NoError(t, err)
	for i := 0; i < maxTickets+5; i++ {
		fmt.Fprintf(file, "Ticket %d, Agent: X, Date: 2026-08-31 14:03:22, Total: 1.00\n", 1001+i)
	}
	require.NoError(t, file.Close())

	summaries, err := ledger.List()
	require.NoError(t, err)
	assert.Len(t, summaries, maxTickets)
}
