package tui

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/ticket/repository"
)

// runTicketBrowser shows the paginated ticket list, newest first, with
// arrow-key selection and Enter drilling into a single ticket.
func (a *App) runTicketBrowser() {
	summaries, err := a.tickets.ListTickets()
	if err != nil {
		a.logger.Error("could not list tickets", zap.Error(err))
		a.screen.Clear()
		a.flashMessage(0, 0, "Could not read ticket ledger. Press any key to return.")
		return
	}
	if len(summaries) == 0 {
		a.screen.Clear()
		a.screen.Print(0, 0, StyleDefault, "No tickets available.")
		a.flashMessage(1, 0, "Press any key to return.")
		return
	}

	// Ledger order is oldest first; the browser shows newest first.
	view := make([]model.TicketSummary, len(summaries))
	for i, s := range summaries {
		view[len(summaries)-1-i] = s
	}

	pageSize := a.height - 4
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(view) + pageSize - 1) / pageSize
	selection := 0
	page := 0

	for {
		a.screen.Clear()
		a.screen.Print(0, 0, StyleDefault, "Select a ticket (q to exit, left/right to change page):")
		a.screen.Print(1, 0, StyleLabel,
			fmt.Sprintf("%-10s %-20s %-20s %-12s", "Ticket ID", "Date", "Agent", "Total"))

		start := page * pageSize
		end := start + pageSize
		if end > len(view) {
			end = len(view)
		}
		for i := start; i < end; i++ {
			s := view[i]
			style := StyleDefault
			if i == selection {
				style = StyleReverse
			}
			line := fmt.Sprintf("%-10d %-20s %-20s %12s",
				s.ID, s.Date.Format(repository.DateLayout), s.Agent, a.settings.FormatAmount(s.Total))
			a.screen.Print(i-start+2, 0, style, line)
		}
		a.screen.Print(a.height-1, 0, StyleDefault, fmt.Sprintf("Page %d/%d", page+1, totalPages))
		a.screen.HideCursor()
		a.screen.Show()

		ev, ok := a.readKey()
		if !ok {
			return
		}
		switch {
		case ev.Rune == 'q' || ev.Rune == 'Q':
			return
		case ev.Key == KeyUp:
			if selection > 0 {
				selection--
				if selection < page*pageSize {
					page--
				}
			}
		case ev.Key == KeyDown:
			if selection < len(view)-1 {
				selection++
				if selection >= (page+1)*pageSize {
					page++
				}
			}
		case ev.Key == KeyLeft:
			if page > 0 {
				page--
				selection = page * pageSize
			}
		case ev.Key == KeyRight:
			if page < totalPages-1 {
				page++
				selection = page * pageSize
			}
		case ev.Key == KeyEnter:
			a.viewTicketDetail(view[selection].ID)
		}
	}
}

func (a *App) viewTicketDetail(id int) {
	a.screen.Clear()
	a.screen.Print(0, 0, StyleDefault, fmt.Sprintf("Ticket %d details:", id))

	t, err := a.tickets.TicketDetail(id)
	if err != nil {
		a.logger.Error("could not read ticket detail", zap.Int("id", id), zap.Error(err))
		a.flashMessage(2, 0, "Could not read ticket. Press any key to return.")
		return
	}
	if t == nil {
		a.flashMessage(2, 0, "Ticket not found. Press any key to return.")
		return
	}

	a.screen.Print(2, 0, StyleDefault,
		fmt.Sprintf("Agent: %s   Date: %s", t.Agent, t.Date.Format(repository.DateLayout)))
	y := 4
	for _, line := range t.Lines {
		a.screen.Print(y, 0, StyleDefault,
			fmt.Sprintf("  %-30.30s %12s", line.Name, a.settings.FormatAmount(line.Price)))
		y++
	}
	a.screen.Print(y+1, 0, StyleAccent, "Total: "+a.settings.FormatAmount(t.Total))
	a.flashMessage(y+3, 0, "Press any key to return...")
}
