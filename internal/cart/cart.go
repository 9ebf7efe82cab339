package cart

import (
	"errors"

	"github.com/fekuna/omnipos-terminal/internal/model"
)

var (
	ErrCartFull    = errors.New("cart is full")
	ErrBadPosition = errors.New("invalid cart position")
)

// Cart is the bounded, ordered set of items for the in-progress sale.
// It owns its entries by value and keeps the running total in step with
// every mutation.
type Cart struct {
	items    []model.CartItem
	total    float64
	capacity int
}

func New(capacity int) *Cart {
	return &Cart{
		items:    make([]model.CartItem, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a snapshot of the product. Adding beyond capacity is an
// explicit rejection, not a silent cap.
func (c *Cart) Add(p model.Product) error {
	if len(c.items) >= c.capacity {
		return ErrCartFull
	}
	c.items = append(c.items, model.CartItem{Product: p})
	c.total += p.Price
	return nil
}

// Remove deletes the entry at the 0-based index, shifting later entries
// down. The removed item is returned so the caller can report it.
func (c *Cart) Remove(index int) (model.CartItem, error) {
	if index < 0 || index >= len(c.items) {
		return model.CartItem{}, ErrBadPosition
	}
	removed := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.total -= removed.Price
	return removed, nil
}

func (c *Cart) Clear() {
	c.items = c.items[:0]
	c.total = 0.0
}

// Items returns the entries in insertion order. The slice is a copy;
// mutating it does not touch the cart.
func (c *Cart) Items() []model.CartItem {
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() float64 {
	return c.total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Capacity() int {
	return c.capacity
}
