package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-terminal/internal/model"
)

// requireTotalInvariant checks total == sum of entry prices, which must
// hold after every mutation, not just at the end.
func requireTotalInvariant(t *testing.T, c *Cart) {
	t.Helper()
	var sum float64
	for _, item := range c.Items() {
		sum += item.Price
	}
	require.InDelta(t, sum, c.Total(), 1e-9)
}

func TestCart_AddAndRemoveScenario(t *testing.T) {
	c := New(50)
	requireTotalInvariant(t, c)

	require.NoError(t, c.Add(model.Product{ID: 1001, Name: "Coffee", Price: 9.99}))
	requireTotalInvariant(t, c)
	require.NoError(t, c.Add(model.Product{ID: 1002, Name: "Tea", Price: 4.50}))
	requireTotalInvariant(t, c)
	assert.InDelta(t, 14.49, c.Total(), 1e-9)

	removed, err := c.Remove(0)
	require.NoError(t, err)
	requireTotalInvariant(t, c)
	assert.Equal(t, 1001, removed.ID)
	assert.InDelta(t, 4.50, c.Total(), 1e-9)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1002, items[0].ID)
}

func TestCart_CapacityRejection(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Add(model.Product{ID: 1, Price: 1.00}))
	require.NoError(t, c.Add(model.Product{ID: 2, Price: 2.00}))

	err := c.Add(model.Product{ID: 3, Price: 3.00})
	assert.ErrorIs(t, err, ErrCartFull)
	assert.Equal(t, 2, c.Len())
	requireTotalInvariant(t, c)
}

func TestCart_RemoveOutOfRange(t *testing.T) {
	c := New(50)
	require.NoError(t, c.Add(model.Product{ID: 1, Price: 5.00}))

	_, err := c.Remove(-1)
	assert.ErrorIs(t, err, ErrBadPosition)
	_, err = c.Remove(1)
	assert.ErrorIs(t, err, ErrBadPosition)

	assert.Equal(t, 1, c.Len())
	requireTotalInvariant(t, c)
}

func TestCart_RemoveCompacts(t *testing.T) {
	c := New(50)
	for i := 1; i <= 3; i++ {
		require.NoError(t, c.Add(model.Product{ID: i, Price: float64(i)}))
	}

	_, err := c.Remove(1)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 3, items[1].ID)
	requireTotalInvariant(t, c)
}

func TestCart_Clear(t *testing.T) {
	c := New(50)
	require.NoError(t, c.Add(model.Product{ID: 1, Price: 5.00}))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Total())
	requireTotalInvariant(t, c)
}

func TestCart_SnapshotsAreCopies(t *testing.T) {
	c := New(50)
	p := model.Product{ID: 1, Name: "Original", Price: 5.00}
	require.NoError(t, c.Add(p))

	p.Name = "Edited"
	p.Price = 99.0

	items := c.Items()
	assert.Equal(t, "Original", items[0].Name)
	assert.InDelta(t, 5.00, items[0].Price, 1e-9)
}

func TestCart_TotalInvariantUnderMixedOps(t *testing.T) {
	c := New(10)
	prices := []float64{1.25, 0.99, 12.40, 3.10, 7.77}
	for i, price := range prices {
		require.NoError(t, c.Add(model.Product{ID: i + 1, Price: price}))
		requireTotalInvariant(t, c)
	}
	for c.Len() > 0 {
		_, err := c.Remove(c.Len() - 1)
		require.NoError(t, err)
		requireTotalInvariant(t, c)
	}
	assert.Zero(t, c.Total())
}
