package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/config"
	"context"
	"fmt"
	"net/http"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Request a magic sign-in link by email" }
func (loginCmd) Usage() string       { return "login <email>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	email := args[0]

	payload := map[string]string{"email": email}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/auth/magiclink"), payload, "")
	if err != nil {
		return err
	}
	if err := requireStatus(resp, body, http.StatusAccepted); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Magic link sent to %s\n", email)
	fmt.Fprintln(Out, "Finish sign-in with: nbcli verify <token>")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
