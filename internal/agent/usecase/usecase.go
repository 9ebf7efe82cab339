package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/agent"
	"github.com/fekuna/omnipos-terminal/internal/model"
)

type agentUseCase struct {
	repo    agent.Repository
	session model.Session
	logger  *zap.Logger
	now     func() time.Time
}

func NewAgentUseCase(repo agent.Repository, log *zap.Logger) agent.UseCase {
	now := time.Now
	return &agentUseCase{
		repo: repo,
		session: model.Session{
			ID:      uuid.NewString(),
			Agent:   agent.DefaultAgent,
			LoginAt: now(),
		},
		logger: log,
		now:    now,
	}
}

// Login swaps the session on success and leaves it untouched on failure.
func (uc *agentUseCase) Login(code, password string) bool {
	if !uc.repo.Validate(code, password) {
		uc.logger.Warn("agent login rejected", zap.String("code", code))
		return false
	}
	uc.session = model.Session{
		ID:            uuid.NewString(),
		Agent:         code,
		Authenticated: true,
		LoginAt:       uc.now(),
	}
	uc.logger.Info("agent logged in",
		zap.String("code", code),
		zap.String("session_id", uc.session.ID))
	return true
}

func (uc *agentUseCase) Session() model.Session {
	return uc.session
}

func (uc *agentUseCase) Elapsed() time.Duration {
	return uc.now().Sub(uc.session.LoginAt)
}
