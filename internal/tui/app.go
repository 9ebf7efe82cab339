package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/config"
	"github.com/fekuna/omnipos-terminal/internal/agent"
	"github.com/fekuna/omnipos-terminal/internal/cart"
	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/product"
	"github.com/fekuna/omnipos-terminal/internal/ticket"
)

// App is the main-screen state machine. It owns the query buffer, the
// current search result, the cart view scroll offset and the field focus
// index, and dispatches every keystroke. All state lives here; nothing
// is process-global.
type App struct {
	screen   Screen
	settings *config.Settings
	catalog  product.UseCase
	tickets  ticket.UseCase
	agents   agent.UseCase
	cart     *cart.Cart
	logger   *zap.Logger

	pollInterval time.Duration
	queryWidth   int

	width, height    int
	query            string
	current          *model.Product
	fieldEdit        int
	scroll           int
	nextTicketID     int
	cursorY, cursorX int
	dirty            bool
	running          bool
}

func New(
	screen Screen,
	cfg *config.Config,
	settings *config.Settings,
	catalog product.UseCase,
	tickets ticket.UseCase,
	agents agent.UseCase,
	shoppingCart *cart.Cart,
	nextTicketID int,
	log *zap.Logger,
) *App {
	return &App{
		screen:       screen,
		settings:     settings,
		catalog:      catalog,
		tickets:      tickets,
		agents:       agents,
		cart:         shoppingCart,
		logger:       log,
		pollInterval: time.Duration(cfg.UI.PollIntervalMs) * time.Millisecond,
		queryWidth:   cfg.UI.QueryWidth,
		nextTicketID: nextTicketID,
	}
}

// Run drives the cooperative poll loop: one goroutine, a select over the
// screen event channel and a redraw ticker. The ticker keeps the clock
// and session duration live even with no input; the full screen is only
// redrawn when a key actually changed state.
func (a *App) Run() error {
	a.width, a.height = a.screen.Size()
	a.running = true
	a.dirty = true

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for a.running {
		select {
		case ev, ok := <-a.screen.Events():
			if !ok {
				a.running = false
				continue
			}
			a.handleEvent(ev)
		case <-ticker.C:
		}

		if !a.running {
			break
		}
		if a.dirty {
			a.drawMainScreen()
			a.dirty = false
		}
		a.drawClock()
		a.screen.ShowCursor(a.cursorY, a.cursorX)
		a.screen.Show()
	}

	a.logger.Info("main loop finished")
	return nil
}

func (a *App) handleEvent(ev Event) {
	switch ev := ev.(type) {
	case ResizeEvent:
		a.width, a.height = a.screen.Size()
		a.dirty = true
	case KeyEvent:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev KeyEvent) {
	switch ev.Key {
	case KeyBackspace:
		if len(a.query) > 0 {
			a.query = a.query[:len(a.query)-1]
			a.research()
			a.dirty = true
		}
	case KeyTab:
		if a.scroll < a.cart.Len()-a.cartRows() {
			a.scroll++
		}
		if a.fieldEdit < fieldCount-1 {
			a.fieldEdit++
		}
		a.dirty = true
	case KeyBacktab:
		if a.scroll > 0 {
			a.scroll--
		}
		if a.fieldEdit > 0 {
			a.fieldEdit--
		}
		a.dirty = true
	case KeyEnter:
		a.addCurrentToCart()
	case KeyRune:
		a.handleRune(ev.Rune)
	}
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'q', 'Q':
		a.running = false
	case 'm', 'M':
		if a.runManageMenu() {
			a.running = false
			return
		}
		a.dirty = true
	case 'p', 'P':
		a.checkoutFlow()
	case 'd', 'D':
		a.deleteFromCartFlow()
	case 'a', 'A':
		a.loginFlow()
	case 'n', 'N':
		a.addByNameFlow()
	case 's', 'S':
		a.takeScreenshot()
	default:
		if unicode.IsPrint(r) && len(a.query) < a.queryWidth {
			a.query += string(r)
			a.research()
			a.dirty = true
		}
	}
}

func (a *App) research() {
	result, err := a.catalog.Search(a.query)
	if err != nil {
		a.logger.Error("catalog search failed", zap.String("query", a.query), zap.Error(err))
		result = nil
	}
	a.current = result
}

func (a *App) addCurrentToCart() {
	if a.current == nil {
		return
	}
	if err := a.cart.Add(*a.current); err != nil {
		if errors.Is(err, cart.ErrCartFull) {
			a.flashMessage(a.height-2, a.width/2+2, "Cart is full. Press key ...")
		}
		a.dirty = true
		return
	}
	a.query = ""
	a.current = nil
	if a.settings.BeepOnInsert {
		a.screen.Beep()
	}
	a.dirty = true
}

// deleteFromCartFlow asks for a 1-based cart position (last entry by
// default) and removes it after confirmation.
func (a *App) deleteFromCartFlow() {
	input, ok := a.readLine(a.height-3, a.width/2+2, "POS to delete (last by default): ", false)
	if !ok {
		return
	}
	pos := a.cart.Len() - 1
	if input != "" {
		pos = parseIntOrZero(input) - 1
	}
	if pos < 0 || pos >= a.cart.Len() {
		a.flashMessage(a.height-2, a.width/2+2, "Invalid position. Press key ...")
		a.dirty = true
		return
	}

	items := a.cart.Items()
	prompt := fmt.Sprintf("Delete %-15.15s (%d)? (Y/n): ", items[pos].Name, pos+1)
	a.screen.Print(a.height-3, a.width/2+2, StyleDefault, prompt)
	a.screen.Show()
	key, ok := a.readKey()
	if !ok {
		return
	}
	if key.Rune == 'n' || key.Rune == 'N' {
		a.flashMessage(a.height-2, a.width/2+2, "Item not removed. Press key ...")
	} else {
		if _, err := a.cart.Remove(pos); err != nil {
			a.flashMessage(a.height-2, a.width/2+2, "Invalid position. Press key ...")
		}
		if a.scroll > 0 && a.scroll > a.cart.Len()-a.cartRows() {
			a.scroll--
		}
	}
	a.dirty = true
}

func (a *App) checkoutFlow() {
	if !a.confirmWindow("Checkout? (Y/n)") {
		a.dirty = true
		return
	}
	id, err := a.tickets.Checkout(a.cart.Items(), a.cart.Total(), a.agents.Session().Agent)
	if err != nil {
		a.logger.Error("checkout failed", zap.Error(err))
		a.flashMessage(a.height-2, a.width/2+2, "Could not record ticket. Press key ...")
		a.dirty = true
		return
	}
	// Clear only after the ledger append succeeded.
	a.cart.Clear()
	a.scroll = 0
	a.nextTicketID = id + 1
	a.dirty = true
}

func (a *App) loginFlow() {
	code, ok := a.readLine(a.height-3, 0, "Enter agent code (ENTER='no agent'): ", false)
	if !ok {
		return
	}
	a.clearRow(a.height - 3)
	password, ok := a.readLine(a.height-3, 0, "Enter agent password: ", true)
	if !ok {
		return
	}
	if !a.agents.Login(code, password) {
		a.flashMessage(a.height-2, 0, "Invalid agent code or password.")
	}
	a.dirty = true
}

// addByNameFlow prompts for a free-text query and adds the result to the
// cart. Resolution goes through the same search service as the main
// query field.
func (a *App) addByNameFlow() {
	name, ok := a.readLine(a.height-3, 0, "Enter product name: ", false)
	if !ok {
		return
	}
	result, err := a.catalog.Search(name)
	if err != nil {
		a.logger.Error("catalog search failed", zap.String("query", name), zap.Error(err))
	}
	if result != nil {
		if err := a.cart.Add(*result); err != nil {
			if errors.Is(err, cart.ErrCartFull) {
				a.flashMessage(a.height-2, 0, "Cart is full. Press key ...")
			}
		} else if a.settings.BeepOnInsert {
			a.screen.Beep()
		}
	}
	a.dirty = true
}

// cartRows is how many cart entries fit in the right panel.
func (a *App) cartRows() int {
	return a.height - 3
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
