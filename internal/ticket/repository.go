package ticket

import (
	"github.com/fekuna/omnipos-terminal/internal/model"
)

type Repository interface {
	Append(t *model.Ticket) error
	List() ([]model.TicketSummary, error)
	Detail(id int) (*model.Ticket, error)
}
