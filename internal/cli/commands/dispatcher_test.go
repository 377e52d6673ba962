package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_NoArgsShowsUsage(t *testing.T) {
	buf := captureOut(t)
	cfg := newTestConfig(t, "http://localhost:0")

	code := Dispatch(context.Background(), cfg, nil)

	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "NoteBoard CLI")
	assert.Contains(t, buf.String(), "Commands:")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := captureOut(t)
	cfg := newTestConfig(t, "http://localhost:0")

	code := Dispatch(context.Background(), cfg, []string{"frobnicate"})

	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Unknown command: frobnicate")
}

func TestDispatch_HelpForCommand(t *testing.T) {
	buf := captureOut(t)
	cfg := newTestConfig(t, "http://localhost:0")

	code := Dispatch(context.Background(), cfg, []string{"help", "note-rm"})

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Usage: note-rm <id>")
}

// Тест: неверные аргументы дают usage конкретной команды и код 2
func TestDispatch_BadArgsShowUsage(t *testing.T) {
	buf := captureOut(t)
	cfg := newTestConfig(t, "http://localhost:0")

	code := Dispatch(context.Background(), cfg, []string{"login"})

	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Usage: login <email>")
}

func TestRegistry_AllCommandsPresent(t *testing.T) {
	for _, name := range []string{
		"login", "verify", "oauth", "logout", "whoami",
		"profile", "avatar", "notes", "note-add", "note-edit", "note-rm", "watch",
	} {
		_, ok := Get(name)
		assert.True(t, ok, "command %q must be registered", name)
	}
}
