package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type profileJSON struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Website   *string `json:"website"`
	AvatarRef *string `json:"avatar_ref"`
	UpdatedAt string  `json:"updated_at"`
}

type profileCmd struct{}

func (profileCmd) Name() string { return "profile" }
func (profileCmd) Description() string {
	return "Показать или сохранить свой профиль"
}
func (profileCmd) Usage() string { return "profile [set <username> [<website>]]" }

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token := session.Token(cfg.TokenFile)
	if token == "" {
		return errors.New("not logged in")
	}

	if len(args) == 0 {
		return showProfile(cfg, token)
	}
	if args[0] != "set" || len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}

	payload := map[string]any{"username": args[1]}
	if len(args) == 3 {
		payload["website"] = args[2]
	}
	resp, body, err := api.PutJSON(endpoint(cfg, "/api/profile"), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusBadRequest {
		return errors.New("username must be at least 3 characters")
	}
	if err := requireStatus(resp, body, http.StatusOK); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Profile saved")
	return nil
}

func showProfile(cfg *config.Config, token string) error {
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/profile"), token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		fmt.Fprintln(Out, "Профиль ещё не сохранён: profile set <username>")
		return nil
	}
	if err := requireStatus(resp, body, http.StatusOK); err != nil {
		return err
	}

	var p profileJSON
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "username: %s\n", p.Username)
	if p.Website != nil && *p.Website != "" {
		fmt.Fprintf(Out, "website:  %s\n", *p.Website)
	}
	if p.AvatarRef != nil && *p.AvatarRef != "" {
		fmt.Fprintf(Out, "avatar:   %s\n", *p.AvatarRef)
	}
	return nil
}

func init() { RegisterCmd(profileCmd{}) }
