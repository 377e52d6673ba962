package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type verifyCmd struct{}

func (verifyCmd) Name() string        { return "verify" }
func (verifyCmd) Description() string { return "Exchange a magic-link token for a session" }
func (verifyCmd) Usage() string       { return "verify <token>" }

func (verifyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	payload := map[string]string{"token": args[0]}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/auth/verify"), payload, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("token is invalid or expired, request a new link")
	}
	if err := requireStatus(resp, body, http.StatusOK); err != nil {
		return err
	}

	if err := api.PersistAuthFromResponse(resp, cfg.TokenFile); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Signed in")
	return nil
}

func init() { RegisterCmd(verifyCmd{}) }
