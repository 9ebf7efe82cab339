package agent

import (
	"time"

	"github.com/fekuna/omnipos-terminal/internal/model"
)

// DefaultAgent is the operator identity before anyone logs in.
const DefaultAgent = "Default"

type UseCase interface {
	Login(code, password string) bool
	Session() model.Session
	// Elapsed is the time since the current session started; shown live
	// in the header.
	Elapsed() time.Duration
}
