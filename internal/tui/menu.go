package tui

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/product/dto"
	"github.com/fekuna/omnipos-terminal/internal/product/usecase"
)

// runManageMenu shows the centered management menu and dispatches to the
// sub-screens. It returns true when the operator chose to exit the whole
// application from inside the menu.
func (a *App) runManageMenu() bool {
	choices := []string{
		"1. Manage products",
		"2. Manage users",
		"3. View tickets",
		"9. Exit application",
		"",
		"q. Exit menu",
	}
	const height, width = 8, 40
	startY := (a.height - height) / 2
	startX := (a.width - width) / 2
	highlight := 0

	for {
		for y := startY; y < startY+height; y++ {
			a.screen.Print(y, startX, StylePrompt, strings.Repeat(" ", width))
		}
		for i, choice := range choices {
			style := StylePrompt
			if i == highlight {
				style = StyleReverse
			}
			if choice == "" {
				continue
			}
			a.screen.Print(startY+i+1, startX+1, style, choice)
		}
		a.screen.HideCursor()
		a.screen.Show()

		ev, ok := a.readKey()
		if !ok {
			return false
		}
		switch {
		case ev.Key == KeyUp:
			for {
				highlight = (highlight - 1 + len(choices)) % len(choices)
				if choices[highlight] != "" {
					break
				}
			}
		case ev.Key == KeyDown:
			for {
				highlight = (highlight + 1) % len(choices)
				if choices[highlight] != "" {
					break
				}
			}
		case ev.Key == KeyEnter:
			switch highlight {
			case 0:
				a.manageProducts()
				return false
			case 1:
				a.manageUsers()
				return false
			case 2:
				a.runTicketBrowser()
				return false
			case 3:
				return true
			default:
				return false
			}
		case ev.Rune == 'q' || ev.Rune == 'Q':
			return false
		}
	}
}

func (a *App) drawProductMenu() {
	a.screen.Clear()
	a.screen.Print(0, 0, StyleDefault, "Product Management")
	a.screen.Print(2, 0, StyleDefault, "1. View products")
	a.screen.Print(3, 0, StyleDefault, "2. Add product")
	a.screen.Print(4, 0, StyleDefault, "3. Delete product")
	a.screen.Print(5, 0, StyleDefault, "q. Exit")
	a.screen.HideCursor()
	a.screen.Show()
}

func (a *App) manageProducts() {
	for {
		a.drawProductMenu()
		ev, ok := a.readKey()
		if !ok {
			return
		}
		switch ev.Rune {
		case '1':
			a.viewProducts()
		case '2':
			a.addProductForm()
		case '3':
			a.deleteProductForm()
		case 'q', 'Q':
			return
		}
	}
}

// viewProducts pages through the whole catalog; any key advances, q
// returns early.
func (a *App) viewProducts() {
	a.screen.Clear()
	products, err := a.catalog.List()
	if err != nil {
		a.logger.Error("could not list products", zap.Error(err))
		a.flashMessage(0, 0, "Could not read product store. Press any key to return.")
		return
	}
	if len(products) == 0 {
		a.flashMessage(0, 0, "No products found. Press any key to return.")
		return
	}

	linesPerPage := a.height - 3
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	page := 1
	for i, p := range products {
		row := i % linesPerPage
		if row == 0 {
			a.screen.Clear()
			a.screen.Print(0, 0, StyleDefault,
				fmt.Sprintf("Product List - Page %d (any key for next page, 'q' to quit)", page))
			a.screen.Print(1, 0, StyleLabel,
				fmt.Sprintf("%-8s %-25s %10s %8s", "ID", "Product", "Price", "Stock"))
		}
		a.screen.Print(row+2, 0, StyleDefault,
			fmt.Sprintf("%-8d %-25.25s %10s %8d", p.ID, p.Name, a.settings.FormatAmount(p.Price), p.Stock))
		if row == linesPerPage-1 && i < len(products)-1 {
			a.screen.HideCursor()
			a.screen.Show()
			ev, ok := a.readKey()
			if !ok || ev.Rune == 'q' || ev.Rune == 'Q' {
				return
			}
			page++
		}
	}
	a.flashMessage(a.height-1, 0, "End of list. Press any key to return.")
}

func (a *App) addProductForm() {
	a.screen.Clear()
	a.screen.Print(0, 0, StyleDefault, "Add New Product:")
	a.screen.Show()

	name, ok := a.readLine(2, 0, "Product Name: ", false)
	if !ok {
		return
	}
	priceStr, ok := a.readLine(3, 0, "Price: ", false)
	if !ok {
		return
	}
	stockStr, ok := a.readLine(4, 0, "Stock: ", false)
	if !ok {
		return
	}
	var tiers [4]float64
	for i := range tiers {
		tierStr, ok := a.readLine(5+i, 0, fmt.Sprintf("Price%02d: ", i+1), false)
		if !ok {
			return
		}
		tiers[i] = parseFloatOrZero(tierStr)
	}

	input := &dto.CreateProductInput{
		Name:       name,
		Price:      parseFloatOrZero(priceStr),
		Stock:      parseIntOrZero(stockStr),
		TierPrices: tiers,
	}
	created, err := a.catalog.Create(input)
	switch {
	case errors.Is(err, usecase.ErrNegativeStock):
		a.screen.Print(10, 0, StyleDefault, "Stock cannot be negative.")
	case err != nil:
		a.logger.Error("could not add product", zap.Error(err))
		a.screen.Print(10, 0, StyleDefault, "Failed to add product.")
	default:
		a.screen.Print(10, 0, StyleDefault,
			fmt.Sprintf("Product added successfully with ID %d.", created.ID))
		if a.settings.BeepOnInsert {
			a.screen.Beep()
		}
	}
	a.flashMessage(12, 0, "Press any key to continue...")
}

func (a *App) deleteProductForm() {
	a.screen.Clear()
	a.screen.Print(0, 0, StyleDefault, "Delete Product:")
	a.screen.Show()

	idStr, ok := a.readLine(2, 0, "Enter Product ID to delete: ", false)
	if !ok {
		return
	}
	id := parseIntOrZero(idStr)
	found, err := a.catalog.Delete(id)
	switch {
	case err != nil:
		a.logger.Error("could not delete product", zap.Int("id", id), zap.Error(err))
		a.screen.Print(4, 0, StyleDefault, "Failed to delete product.")
	case found:
		a.screen.Print(4, 0, StyleDefault,
			fmt.Sprintf("Product with ID %d deleted successfully.", id))
	default:
		a.screen.Print(4, 0, StyleDefault,
			fmt.Sprintf("Product with ID %d not found.", id))
	}
	a.flashMessage(6, 0, "Press any key to continue...")
}

// manageUsers is still the placeholder it has always been; real operator
// accounts live in the agents file.
func (a *App) manageUsers() {
	for {
		a.screen.Clear()
		a.screen.Print(0, 0, StyleDefault, "User Management")
		a.screen.Print(2, 0, StyleDefault, "1. View users")
		a.screen.Print(3, 0, StyleDefault, "2. Add user")
		a.screen.Print(4, 0, StyleDefault, "3. Delete user")
		a.screen.Print(5, 0, StyleDefault, "q. Exit")
		a.screen.HideCursor()
		a.screen.Show()

		ev, ok := a.readKey()
		if !ok {
			return
		}
		switch ev.Rune {
		case '1':
			a.screen.Clear()
			a.screen.Print(0, 0, StyleDefault, "User List (stub):")
			for i := 0; i < 5; i++ {
				a.screen.Print(i+1, 0, StyleDefault, fmt.Sprintf("User %d: User%d", i+1, i+1))
			}
			a.flashMessage(a.height-1, 0, "Press any key to return.")
		case '2':
			a.screen.Clear()
			username, ok := a.readLine(0, 0, "Enter new username: ", false)
			if !ok {
				return
			}
			a.screen.Print(2, 0, StyleDefault, fmt.Sprintf("User '%s' added (stub).", username))
			a.flashMessage(4, 0, "Press any key to return.")
		case '3':
			a.screen.Clear()
			idStr, ok := a.readLine(0, 0, "Enter user ID to delete: ", false)
			if !ok {
				return
			}
			a.screen.Print(2, 0, StyleDefault, fmt.Sprintf("User with ID %s deleted (stub).", idStr))
			a.flashMessage(4, 0, "Press any key to return.")
		case 'q', 'Q':
			return
		}
	}
}
