package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fix the tests", Session{ID: "abc", DisplayName: "  fix the tests "}.Label())
	assert.Equal(t, "0123456789ab", Session{ID: "0123456789abcdef"}.Label())
	assert.Equal(t, "short", Session{ID: "short"}.Label())
}

func TestSessionProjectName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bridge", Session{CWD: "/home/me/src/bridge"}.ProjectName())
	assert.Empty(t, Session{}.ProjectName())
}

func TestPickListedSessionsDropsNoise(t *testing.T) {
	t.Parallel()

	sessions := []Session{
		{ID: "1", DisplayName: "/exit"},
		{ID: "2", DisplayName: "refactor parser"},
		{ID: "3", DisplayName: " /Sessions "},
		{ID: "4", DisplayName: ""},
		{ID: "5", DisplayName: "add retries"},
		{ID: "6", DisplayName: "write docs"},
	}

	got := PickListedSessions(sessions, 2)
	assert.Equal(t, []Session{sessions[1], sessions[4]}, got)
}

func TestPickListedSessionsFallsBackWhenAllNoise(t *testing.T) {
	t.Parallel()

	sessions := []Session{
		{ID: "1", DisplayName: "/help"},
		{ID: "2", DisplayName: "/resume"},
	}

	assert.Equal(t, sessions, PickListedSessions(sessions, 5))
	assert.Empty(t, PickListedSessions(nil, 5))
}

func TestPermissionModeToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PermissionModeSkipPermissions, PermissionModeSafe.Toggle())
	assert.Equal(t, PermissionModeSafe, PermissionModeSkipPermissions.Toggle())
	assert.Equal(t, "safe", PermissionModeSafe.String())
	assert.Equal(t, "skip-permissions", PermissionModeSkipPermissions.String())
	assert.True(t, PermissionModeSkipPermissions.SkipsPermissions())
}
