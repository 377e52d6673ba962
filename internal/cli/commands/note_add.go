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
	"strconv"
)

// parseNoteArgs разбирает <title> [<note>] [<type 1|2|3>].
func parseNoteArgs(args []string) (title, note string, noteType int, err error) {
	noteType = 1 // unpermitted, как у новой заметки по умолчанию
	switch len(args) {
	case 1:
		title = args[0]
	case 2:
		title = args[0]
		note = args[1]
	case 3:
		title = args[0]
		note = args[1]
		noteType, err = strconv.Atoi(args[2])
		if err != nil || noteType < 1 || noteType > 3 {
			return "", "", 0, ErrUsage
		}
	default:
		return "", "", 0, ErrUsage
	}
	return title, note, noteType, nil
}

type noteAddCmd struct{}

func (noteAddCmd) Name() string { return "note-add" }
func (noteAddCmd) Description() string {
	return "Добавить заметку (type: 1=locked, 2=readable, 3=writable)"
}
func (noteAddCmd) Usage() string { return "note-add <title> [<note>] [<type>]" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	title, note, noteType, err := parseNoteArgs(args)
	if err != nil {
		return err
	}
	token := session.Token(cfg.TokenFile)
	if token == "" {
		return errors.New("not logged in")
	}

	payload := map[string]any{"title": title, "note": note, "note_type": noteType}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/notes"), payload, token)
	if err != nil {
		return err
	}
	if err := requireStatus(resp, body, http.StatusCreated); err != nil {
		return err
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created note #%d\n", created.ID)
	return nil
}

func init() { RegisterCmd(noteAddCmd{}) }
