package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/agent"
)

type stubRepository struct {
	code, password string
}

func (s *stubRepository) Validate(code, password string) bool {
	return code == s.code && password == s.password
}

func TestLogin_Success(t *testing.T) {
	uc := NewAgentUseCase(&stubRepository{code: "maria", password: "secret"}, zap.NewNop())

	before := uc.Session()
	assert.Equal(t, agent.DefaultAgent, before.Agent)
	assert.False(t, before.Authenticated)

	require.True(t, uc.Login("maria", "secret"))

	after := uc.Session()
	assert.Equal(t, "maria", after.Agent)
	assert.True(t, after.Authenticated)
	assert.NotEqual(t, before.ID, after.ID)
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	uc := NewAgentUseCase(&stubRepository{code: "maria", password: "secret"}, zap.NewNop())

	require.False(t, uc.Login("maria", "wrong"))

	session := uc.Session()
	assert.Equal(t, agent.DefaultAgent, session.Agent)
	assert.False(t, session.Authenticated)
}

func TestElapsed(t *testing.T) {
	uc := NewAgentUseCase(&stubRepository{code: "maria", password: "secret"}, zap.NewNop()).(*agentUseCase)

	start := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return start }
	require.True(t, uc.Login("maria", "secret"))

	uc.now = func() time.Time { return start.Add(90 * time.Second) }
	assert.Equal(t, 90*time.Second, uc.Elapsed())
}
