package tui

import (
	"fmt"
	"os/exec"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// takeScreenshot shells out to scrot for a capture of the focused
// window. Best effort: a failure is reported and logged, never fatal.
func (a *App) takeScreenshot() {
	name := fmt.Sprintf("pos-%s.png", uuid.NewString())
	if err := exec.Command("scrot", "-u", name).Run(); err != nil {
		a.logger.Warn("screenshot failed", zap.String("file", name), zap.Error(err))
		a.flashMessage(a.height-2, 0, "Screenshot failed. Press key ...")
		a.dirty = true
		return
	}
	a.logger.Info("screenshot saved", zap.String("file", name))
}
