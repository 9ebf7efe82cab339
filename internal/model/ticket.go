package model

import "time"

type TicketSummary struct {
	ID    int
	Agent string
	Date  time.Time
	Total float64
}

type TicketLine struct {
	Name  string
	Price float64
}

// Ticket is one completed sale. Tickets are immutable once appended to
// the ledger.
type Ticket struct {
	ID    int
	Agent string
	Date  time.Time
	Total float64
	Lines []TicketLine
}
