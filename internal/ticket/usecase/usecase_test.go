package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/pkg/counter"
	"github.com/fekuna/omnipos-terminal/internal/ticket/repository"
)

func newTestUseCase(t *testing.T) (*ticketUseCase, string, *counter.Counter) {
	t.Helper()
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "transactions.csv")
	idCounter := counter.New(filepath.Join(dir, "last_ticket_id.txt"))

	date, err := time.ParseInLocation(repository.DateLayout, "2026-08-31 14:03:22", time.Local)
	require.NoError(t, err)

	uc := &ticketUseCase{
		repo:    repository.NewLedgerRepository(ledgerPath),
		counter: idCounter,
		logger:  zap.NewNop(),
		now:     func() time.Time { return date },
	}
	return uc, ledgerPath, idCounter
}

func TestCheckout_FirstTicketUsesBaseline(t *testing.T) {
	uc, ledgerPath, idCounter := newTestUseCase(t)

	items := []model.CartItem{{Product: model.Product{ID: 1002, Name: "Tea", Price: 4.50}}}
	id, err := uc.Checkout(items, 4.50, "X")
	require.NoError(t, err)
	assert.Equal(t, counter.MissingBaseline, id)
	assert.Equal(t, id+1, idCounter.ReadLast())

	data, err := os.ReadFile(ledgerPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Ticket 1001, Agent: X, Date: 2026-08-31 14:03:22, Total: 4.50", lines[0])
	assert.Equal(t, "  Tea, 4.50", lines[1])
}

func TestCheckout_IdsAreMonotonic(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	first, err := uc.Checkout(nil, 0, "X")
	require.NoError(t, err)
	second, err := uc.Checkout(nil, 0, "X")
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestCheckout_ListAndDetailRoundTrip(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	items := []model.CartItem{
		{Product: model.Product{Name: "Coffee", Price: 9.99}},
		{Product: model.Product{Name: "Tea", Price: 4.50}},
	}
	id, err := uc.Checkout(items, 14.49, "maria")
	require.NoError(t, err)

	summaries, err := uc.ListTickets()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, id, summaries[0].ID)
	assert.Equal(t, "maria", summaries[0].Agent)

	detail, err := uc.TicketDetail(id)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.Len(t, detail.Lines, 2)
	assert.Equal(t, "Coffee", detail.Lines[0].Name)
	assert.InDelta(t, 14.49, detail.Total, 1e-9)
}
