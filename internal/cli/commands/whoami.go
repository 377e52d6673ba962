package commands

import (
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"context"
	"fmt"
	"time"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the current local session" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	s, err := session.Load(cfg.TokenFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "user:  %s\n", s.UserID)
	if s.Email != "" {
		fmt.Fprintf(Out, "email: %s\n", s.Email)
	}
	if !s.ExpiresAt.IsZero() {
		fmt.Fprintf(Out, "valid: until %s\n", s.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
