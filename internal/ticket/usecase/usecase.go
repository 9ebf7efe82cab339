package usecase

import (
	"time"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/pkg/counter"
	"github.com/fekuna/omnipos-terminal/internal/ticket"
)

type ticketUseCase struct {
	repo    ticket.Repository
	counter *counter.Counter
	logger  *zap.Logger
	now     func() time.Time
}

func NewTicketUseCase(repo ticket.Repository, idCounter *counter.Counter, log *zap.Logger) ticket.UseCase {
	return &ticketUseCase{
		repo:    repo,
		counter: idCounter,
		logger:  log,
		now:     time.Now,
	}
}

// Checkout assigns the counter's current value as the ticket id, appends
// the ticket and only then advances the counter. A crash between the two
// writes reuses the id on the next run; that window is accepted.
func (uc *ticketUseCase) Checkout(items []model.CartItem, total float64, agent string) (int, error) {
	id := uc.counter.ReadLast()

	t := &model.Ticket{
		ID:    id,
		Agent: agent,
		Date:  uc.now(),
		Total: total,
	}
	for _, item := range items {
		t.Lines = append(t.Lines, model.TicketLine{Name: item.Name, Price: item.Price})
	}

	if err := uc.repo.Append(t); err != nil {
		return 0, err
	}

	// Same rule as the product counter: a counter that cannot be written
	// would reuse ticket ids, so this failure is fatal.
	if err := uc.counter.WriteLast(id + 1); err != nil {
		uc.logger.Fatal("could not persist last ticket id", zap.Int("id", id+1), zap.Error(err))
	}

	uc.logger.Info("ticket recorded",
		zap.Int("id", id),
		zap.String("agent", agent),
		zap.Int("items", len(items)),
		zap.Float64("total", total))
	return id, nil
}

func (uc *ticketUseCase) ListTickets() ([]model.TicketSummary, error) {
	return uc.repo.List()
}

func (uc *ticketUseCase) TicketDetail(id int) (*model.Ticket, error) {
	return uc.repo.Detail(id)
}
