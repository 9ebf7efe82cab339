package tui

import (
	"github.com/gdamore/tcell/v2"
)

// tcellScreen adapts a tcell.Screen to the Screen interface. A single
// goroutine forwards terminal events into the channel; it exits when
// Fini tears the screen down.
type tcellScreen struct {
	inner  tcell.Screen
	events chan Event
	styles map[Style]tcell.Style
}

func NewTcellScreen() (Screen, error) {
	inner, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := inner.Init(); err != nil {
		return nil, err
	}
	inner.SetStyle(tcell.StyleDefault)
	inner.HideCursor()

	s := &tcellScreen{
		inner:  inner,
		events: make(chan Event, 16),
		styles: map[Style]tcell.Style{
			StyleDefault: tcell.StyleDefault,
			StyleLabel:   tcell.StyleDefault.Foreground(tcell.ColorRed),
			StyleAccent:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
			StyleBar:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
			StyleBarKey:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy),
			StyleReverse: tcell.StyleDefault.Reverse(true),
			StylePrompt:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy),
		},
	}
	go s.forward()
	return s, nil
}

func (s *tcellScreen) forward() {
	for {
		ev := s.inner.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if key, ok := translateKey(ev); ok {
				s.events <- key
			}
		case *tcell.EventResize:
			s.inner.Sync()
			s.events <- ResizeEvent{}
		}
	}
}

func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace}, true
	case tcell.KeyTab:
		return KeyEvent{Key: KeyTab}, true
	case tcell.KeyBacktab:
		return KeyEvent{Key: KeyBacktab}, true
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}, true
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}, true
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}, true
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}, true
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}, true
	}
	return KeyEvent{}, false
}

func (s *tcellScreen) Size() (int, int) {
	return s.inner.Size()
}

func (s *tcellScreen) Clear() {
	s.inner.Clear()
}

func (s *tcellScreen) Print(y, x int, style Style, text string) {
	st := s.styles[style]
	col := x
	for _, r := range text {
		s.inner.SetContent(col, y, r, nil, st)
		col++
	}
}

func (s *tcellScreen) ShowCursor(y, x int) {
	s.inner.ShowCursor(x, y)
}

func (s *tcellScreen) HideCursor() {
	s.inner.HideCursor()
}

func (s *tcellScreen) Show() {
	s.inner.Show()
}

func (s *tcellScreen) Beep() {
	_ = s.inner.Beep()
}

func (s *tcellScreen) Events() <-chan Event {
	return s.events
}

func (s *tcellScreen) Fini() {
	s.inner.Fini()
}
