package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/config"
	"context"
	"fmt"
	"net/http"
)

type oauthCmd struct{}

func (oauthCmd) Name() string        { return "oauth" }
func (oauthCmd) Description() string { return "Sign in via an external OAuth provider" }
func (oauthCmd) Usage() string       { return "oauth <provider> <email>" }

func (oauthCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	payload := map[string]string{"provider": args[0], "email": args[1]}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/auth/oauth"), payload, "")
	if err != nil {
		return err
	}
	if err := requireStatus(resp, body, http.StatusOK); err != nil {
		return err
	}

	if err := api.PersistAuthFromResponse(resp, cfg.TokenFile); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintf(Out, "Signed in via %s\n", args[0])
	return nil
}

func init() { RegisterCmd(oauthCmd{}) }
