package model

import "time"

// Session is the process-wide operator state. It is not persisted; a
// restart always comes back as the default agent.
type Session struct {
	ID            string
	Agent         string
	Authenticated bool
	LoginAt       time.Time
}
