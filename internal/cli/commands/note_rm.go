package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type noteRmCmd struct{}

func (noteRmCmd) Name() string { return "note-rm" }
func (noteRmCmd) Description() string {
	return "Удалить свою заметку (с подтверждением, отмены нет)"
}
func (noteRmCmd) Usage() string { return "note-rm <id>" }

func (noteRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	token := session.Token(cfg.TokenFile)
	if token == "" {
		return errors.New("not logged in")
	}

	// удаление необратимо, поэтому спрашиваем до запроса к серверу
	fmt.Fprintf(Out, "Delete note #%d? This cannot be undone [y/N]: ", id)
	answer, _ := bufio.NewReader(In).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(Out, "Cancelled")
		return nil
	}

	resp, body, err := api.Delete(endpoint(cfg, fmt.Sprintf("/api/notes/%d", id)), token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Fprintf(Out, "Deleted note #%d\n", id)
		return nil
	case http.StatusForbidden:
		return errors.New("only the owner can delete a note")
	case http.StatusNotFound:
		return errors.New("note not found")
	default:
		return requireStatus(resp, body, http.StatusNoContent)
	}
}

func init() { RegisterCmd(noteRmCmd{}) }
