package ticket

import (
	"github.com/fekuna/omnipos-terminal/internal/model"
)

type UseCase interface {
	// Checkout appends one ticket for the given items and returns the
	// assigned ticket id.
	Checkout(items []model.CartItem, total float64, agent string) (int, error)
	ListTickets() ([]model.TicketSummary, error)
	TicketDetail(id int) (*model.Ticket, error)
}
