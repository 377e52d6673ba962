package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

type noteEditCmd struct{}

func (noteEditCmd) Name() string { return "note-edit" }
func (noteEditCmd) Description() string {
	return "Изменить заметку (свою или открытую на запись)"
}
func (noteEditCmd) Usage() string { return "note-edit <id> <title> [<note>] [<type>]" }

func (noteEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	title, note, noteType, err := parseNoteArgs(args[1:])
	if err != nil {
		return err
	}
	token := session.Token(cfg.TokenFile)
	if token == "" {
		return errors.New("not logged in")
	}

	// без явного type сохраняем текущий флаг заметки: чужой менять нельзя
	if len(args[1:]) < 3 {
		entries, err := fetchNotes(cfg)
		if err != nil {
			return err
		}
		found := false
		for _, e := range entries {
			if e.ID == id {
				noteType = e.NoteType
				found = true
				break
			}
		}
		if !found {
			return errors.New("note not found")
		}
	}

	payload := map[string]any{"title": title, "note": note, "note_type": noteType}
	resp, body, err := api.PutJSON(endpoint(cfg, fmt.Sprintf("/api/notes/%d", id)), payload, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Updated note #%d\n", id)
		return nil
	case http.StatusForbidden:
		return errors.New("you are not allowed to edit this note")
	case http.StatusNotFound:
		return errors.New("note not found")
	default:
		return requireStatus(resp, body, http.StatusOK)
	}
}

func init() { RegisterCmd(noteEditCmd{}) }
