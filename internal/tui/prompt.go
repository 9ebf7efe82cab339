package tui

import (
	"strings"
	"unicode"
)

// Modal prompts own the event channel while they run; the main loop is
// not polling during that time, so input ownership is strictly nested.
// Every prompt returns ok=false only when the screen is gone, which
// also terminates the main loop.

func (a *App) readKey() (KeyEvent, bool) {
	for ev := range a.screen.Events() {
		switch ev := ev.(type) {
		case KeyEvent:
			return ev, true
		case ResizeEvent:
			a.width, a.height = a.screen.Size()
			a.dirty = true
		}
	}
	a.running = false
	return KeyEvent{}, false
}

// readLine edits a single line at the given position until Enter. With
// masked set, typed characters echo as asterisks (password entry).
// Escape cancels and returns an empty line.
func (a *App) readLine(y, x int, prompt string, masked bool) (string, bool) {
	a.screen.Print(y, x, StyleDefault, prompt)
	inputX := x + len(prompt)

	var buf []rune
	for {
		a.screen.ShowCursor(y, inputX+len(buf))
		a.screen.Show()
		ev, ok := a.readKey()
		if !ok {
			return "", false
		}
		switch ev.Key {
		case KeyEnter:
			return strings.TrimSpace(string(buf)), true
		case KeyEscape:
			return "", true
		case KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				a.screen.Print(y, inputX+len(buf), StyleDefault, " ")
			}
		case KeyRune:
			if unicode.IsPrint(ev.Rune) {
				echo := ev.Rune
				if masked {
					echo = '*'
				}
				a.screen.Print(y, inputX+len(buf), StyleDefault, string(echo))
				buf = append(buf, ev.Rune)
			}
		}
	}
}

// confirmWindow pops a centered one-line prompt and waits for a single
// key. Anything but n/N confirms.
func (a *App) confirmWindow(msg string) bool {
	const height, width = 5, 40
	startY := (a.height - height) / 2
	startX := (a.width - width) / 2

	for y := startY; y < startY+height; y++ {
		a.screen.Print(y, startX, StylePrompt, strings.Repeat(" ", width))
	}
	a.screen.Print(startY, startX, StylePrompt, "┌"+strings.Repeat("─", width-2)+"┐")
	a.screen.Print(startY+height-1, startX, StylePrompt, "└"+strings.Repeat("─", width-2)+"┘")
	for y := startY + 1; y < startY+height-1; y++ {
		a.screen.Print(y, startX, StylePrompt, "│")
		a.screen.Print(y, startX+width-1, StylePrompt, "│")
	}
	a.screen.Print(startY+2, startX+(width-len(msg))/2, StylePrompt, msg)
	a.screen.HideCursor()
	a.screen.Show()

	ev, ok := a.readKey()
	if !ok {
		return false
	}
	return ev.Rune != 'n' && ev.Rune != 'N'
}

// flashMessage prints a message and waits for any key.
func (a *App) flashMessage(y, x int, msg string) {
	a.screen.Print(y, x, StyleDefault, msg)
	a.screen.HideCursor()
	a.screen.Show()
	a.readKey()
}
