package tui

// Key identifies the non-rune keys the application reacts to.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Event is either a KeyEvent or a ResizeEvent.
type Event interface{}

type KeyEvent struct {
	Key  Key
	Rune rune
}

type ResizeEvent struct{}

// Style is a logical rendering style; the concrete colors live in the
// screen implementation.
type Style int

const (
	StyleDefault Style = iota
	StyleLabel   // field names on the main screen
	StyleAccent  // running total and live ticket id
	StyleBar     // bottom key bar
	StyleBarKey  // hotkey letters inside the bar
	StyleReverse // selection highlight in listings
	StylePrompt  // modal confirm window
)

// Screen is the terminal capability the state machine runs against.
// There is exactly one consumer of Events at any time: the main loop
// while polling, or the active modal prompt while one is open. The
// channel closes when the screen is finalized.
type Screen interface {
	Size() (width, height int)
	Clear()
	Print(y, x int, style Style, text string)
	ShowCursor(y, x int)
	HideCursor()
	Show()
	Beep()
	Events() <-chan Event
	Fini()
}
