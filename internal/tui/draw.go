package tui

import (
	"fmt"
	"time"
)

// fieldCount is the number of focusable fields on the main screen.
const fieldCount = 18

func (a *App) drawMainScreen() {
	a.screen.Clear()
	a.drawFrame()
	a.drawFields()
	a.drawCart()
}

func (a *App) drawFrame() {
	w, h := a.width, a.height
	for y := 2; y < h-2; y++ {
		a.screen.Print(y, 0, StyleDefault, "│")
		a.screen.Print(y, w/2, StyleDefault, "│")
		a.screen.Print(y, w-1, StyleDefault, "│")
	}
	for x := 1; x < w-1; x++ {
		a.screen.Print(1, x, StyleDefault, "─")
		a.screen.Print(h-2, x, StyleDefault, "─")
	}
	a.screen.Print(1, 0, StyleDefault, "┌")
	a.screen.Print(1, w-1, StyleDefault, "┐")
	a.screen.Print(h-2, 0, StyleDefault, "└")
	a.screen.Print(h-2, w-1, StyleDefault, "┘")
	a.screen.Print(1, w/2, StyleDefault, "┬")
	a.screen.Print(h-2, w/2, StyleDefault, "┴")

	// Bottom key bar.
	for x := 0; x < w; x++ {
		a.screen.Print(h-1, x, StyleBar, " ")
	}
	a.screen.Print(h-1, 0, StyleBar, " Agent  Management")
	a.screen.Print(h-1, 1, StyleBarKey, "A")
	a.screen.Print(h-1, 8, StyleBarKey, "M")
	a.screen.Print(h-1, w/2+1, StyleBar, " Pay  Delete")
	a.screen.Print(h-1, w/2+2, StyleBarKey, "P")
	a.screen.Print(h-1, w/2+7, StyleBarKey, "D")
	if a.cart.Len() > a.cartRows() {
		a.screen.Print(h-1, w-20, StyleBar, "Scroll: [Tab/S-Tab]")
	}
}

func (a *App) drawFields() {
	p := a.current
	code := a.query
	if code == "" {
		code = "-"
	}

	type field struct {
		y     int
		label string
		value string
	}

	name, manufacturer, supplier := "-", "", ""
	department, class, subclass, tax := "", "", "", ""
	var descriptions [4]string
	var id, stock int
	var prices [4]float64
	if p != nil {
		id, name, stock = p.ID, p.Name, p.Stock
		manufacturer, supplier = p.Manufacturer, p.Supplier
		department, class, subclass, tax = p.Department, p.Class, p.Subclass, p.TaxCategory
		descriptions = p.Descriptions
		prices[0] = p.Price
		prices[1], prices[2], prices[3] = p.TierPrices[0], p.TierPrices[1], p.TierPrices[2]
	}

	fields := []field{
		{2, "Code", fmt.Sprintf("%-13.13s", code)},
		{4, "ID", fmt.Sprintf("%-13d", id)},
		{5, "Product", fmt.Sprintf("%-38.38s", name)},
		{6, "Stock", fmt.Sprintf("%-13d", stock)},
		{7, "Manufacturer", fmt.Sprintf("%-36.36s", manufacturer)},
		{8, "Supplier", fmt.Sprintf("%-37.37s", supplier)},
		{9, "Department", fmt.Sprintf("%-34.34s", department)},
		{10, "Class", fmt.Sprintf("%-38.38s", class)},
		{11, "Subclass", fmt.Sprintf("%-38.38s", subclass)},
		{12, "Description 1", fmt.Sprintf("%-33.33s", descriptions[0])},
		{14, "Description 2", fmt.Sprintf("%-33.33s", descriptions[1])},
		{16, "Description 3", fmt.Sprintf("%-33.33s", descriptions[2])},
		{18, "Description 4", fmt.Sprintf("%-33.33s", descriptions[3])},
		{20, "Price 1", fmt.Sprintf("%-7.2f", prices[0])},
		{21, "Price 2", fmt.Sprintf("%-7.2f", prices[1])},
		{22, "Price 3", fmt.Sprintf("%-7.2f", prices[2])},
		{23, "Price 4", fmt.Sprintf("%-7.2f", prices[3])},
		{25, "Tax", fmt.Sprintf("%-38.38s", tax)},
	}

	for i, f := range fields {
		a.screen.Print(f.y, 1, StyleLabel, f.label+":")
		valueX := 1 + len(f.label) + 2
		a.screen.Print(f.y, valueX, StyleDefault, f.value)
		if i == a.fieldEdit {
			a.cursorY = f.y
			a.cursorX = valueX + len(f.value) + 1
		}
	}
}

func (a *App) drawCart() {
	xOffset := a.width/2 + 2
	a.screen.Print(0, xOffset+2, StyleAccent, "Total: "+a.settings.FormatAmount(a.cart.Total()))
	a.screen.Print(0, a.width-22, StyleAccent, fmt.Sprintf("[ticket %d]", a.nextTicketID))

	items := a.cart.Items()
	for i := a.scroll; i < len(items) && i-a.scroll < a.cartRows(); i++ {
		marker := ' '
		if i+1 == len(items) {
			marker = '>'
		}
		line := fmt.Sprintf("%c %03d %-25.25s - %7.2f", marker, i+1, items[i].Name, items[i].Price)
		a.screen.Print(i-a.scroll+2, xOffset, StyleDefault, line)
	}
}

// drawClock repaints the live parts of the header: wall clock on the
// right, agent identity and session duration on the left. Runs every
// poll tick regardless of the dirty flag.
func (a *App) drawClock() {
	now := time.Now()
	clock := now.Format("15:04:05")
	a.screen.Print(0, a.width-len(clock)-1, StyleDefault, clock)

	session := a.agents.Session()
	if !session.Authenticated {
		a.screen.Print(0, 1, StyleDefault, "Agent: - no agent -")
		return
	}
	elapsed := a.agents.Elapsed()
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60
	a.screen.Print(0, 1, StyleDefault,
		fmt.Sprintf("Agent: %s (%02d:%02d:%02d)", session.Agent, hours, minutes, seconds))
}

func (a *App) clearRow(y int) {
	for x := 0; x < a.width; x++ {
		a.screen.Print(y, x, StyleDefault, " ")
	}
}
