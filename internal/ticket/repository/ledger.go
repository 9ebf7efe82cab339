package repository

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-terminal/internal/model"
)

// DateLayout is the timestamp format of ledger headers.
const DateLayout = "2006-01-02 15:04:05"

// maxTickets caps how many summaries a single listing session loads.
const maxTickets = 1000

var ErrMalformedHeader = errors.New("malformed ticket header")

// Header lines look like:
//
//	Ticket 1001, Agent: maria, Date: 2026-08-31 14:03:22, Total: 14.49
//
// Everything between one header and the next is that ticket's item lines.
var headerPattern = regexp.MustCompile(`^Ticket (\d+), Agent: (.*), Date: (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}), Total: (-?\d+\.\d{2})$`)

// LedgerRepository is the append-only text file of completed sales. The
// file is never rewritten; tickets are immutable once appended.
type LedgerRepository struct {
	path string
}

func NewLedgerRepository(path string) *LedgerRepository {
	return &LedgerRepository{path: path}
}

func (r *LedgerRepository) Append(t *model.Ticket) error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "Ticket %d, Agent: %s, Date: %s, Total: %.2f\n",
		t.ID, t.Agent, t.Date.Format(DateLayout), t.Total)
	for _, line := range t.Lines {
		fmt.Fprintf(writer, "  %s, %.2f\n", line.Name, line.Price)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return file.Sync()
}

// List returns ticket summaries in file order, capped at 1000. Lines not
// matching the header grammar are item lines and are skipped here. A
// missing ledger reads as empty.
func (r *LedgerRepository) List() ([]model.TicketSummary, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var summaries []model.TicketSummary
	scanner := bufio.NewScanner(file)
	for scanner.Scan() && len(summaries) < maxTickets {
		summary, ok, err := parseHeader(scanner.Text())
		if err != nil || !ok {
			continue
		}
		summaries = append(summaries, summary)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Detail re-scans the ledger and collects everything between the matching
// header and the next one. Returns (nil, nil) when the ticket is absent.
func (r *LedgerRepository) Detail(id int) (*model.Ticket, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var ticket *model.Ticket
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		summary, ok, err := parseHeader(line)
		if err != nil {
			return nil, err
		}
		if ok {
			if ticket != nil {
				break
			}
			if summary.ID == id {
				ticket = &model.Ticket{
					ID:    summary.ID,
					Agent: summary.Agent,
					Date:  summary.Date,
					Total: summary.Total,
				}
			}
			continue
		}
		if ticket != nil {
			ticket.Lines = append(ticket.Lines, parseItemLine(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ticket, nil
}

// parseHeader is the single grammar function for ledger headers. A line
// that does not start with the header prefix is not a header (ok=false);
// a line that does but fails the grammar is a malformed header (error).
func parseHeader(line string) (model.TicketSummary, bool, error) {
	if !strings.HasPrefix(line, "Ticket ") {
		return model.TicketSummary{}, false, nil
	}
	matches := headerPattern.FindStringSubmatch(line)
	if matches == nil {
		return model.TicketSummary{}, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return model.TicketSummary{}, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	date, err := time.ParseInLocation(DateLayout, matches[3], time.Local)
	if err != nil {
		return model.TicketSummary{}, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	total, err := strconv.ParseFloat(matches[4], 64)
	if err != nil {
		return model.TicketSummary{}, false, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return model.TicketSummary{ID: id, Agent: matches[2], Date: date, Total: total}, true, nil
}

// Item lines are "  name, price". Product names may contain commas, so
// the price is split off the last one.
func parseItemLine(line string) model.TicketLine {
	text := strings.TrimSpace(line)
	if i := strings.LastIndex(text, ", "); i >= 0 {
		if price, err := strconv.ParseFloat(text[i+2:], 64); err == nil {
			return model.TicketLine{Name: text[:i], Price: price}
		}
	}
	return model.TicketLine{Name: text}
}
