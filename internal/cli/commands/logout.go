package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Sign out and forget the local session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	// серверу сообщаем по возможности, локальный токен удаляем всегда
	if token := session.Token(cfg.TokenFile); token != "" {
		_, _, _ = api.PostJSON(endpoint(cfg, "/api/auth/logout"), nil, token)
	}
	if err := session.Clear(cfg.TokenFile); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Signed out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
