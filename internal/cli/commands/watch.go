package commands

import (
	"NoteBoard/internal/cli/feed"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"context"
	"errors"
	"fmt"
)

type watchCmd struct{}

func (watchCmd) Name() string { return "watch" }
func (watchCmd) Description() string {
	return "Следить за лентой: события сервера применяются к списку на лету"
}
func (watchCmd) Usage() string { return "watch" }

func (watchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	entries, err := fetchNotes(cfg)
	if err != nil {
		return err
	}
	f := &feed.Feed{}
	f.Replace(entries)
	fmt.Fprintf(Out, "Watching %d notes, Ctrl+C to stop\n", f.Len())

	token := session.Token(cfg.TokenFile)
	events, err := session.Subscribe(ctx, cfg.ServerURL, token)
	if err != nil {
		return err
	}

	for ev := range events {
		if err := applyEvent(cfg, f, ev); err != nil {
			fmt.Fprintf(Out, "! %v\n", err)
			continue
		}
		fmt.Fprintf(Out, "%s #%d, notes: %d\n", ev.Type, ev.NoteID, f.Len())
	}
	if ctx.Err() != nil {
		// остановлено пользователем
		return nil
	}
	return errors.New("event stream closed by server")
}

// applyEvent переносит серверное событие в локальную ленту.
func applyEvent(cfg *config.Config, f *feed.Feed, ev session.Event) error {
	switch ev.Type {
	case "note.deleted":
		if f.Remove(ev.NoteID) {
			fmt.Fprintln(Out, "открытая заметка удалена, редактор сброшен")
		}
		return nil
	case "note.created", "note.updated":
		// тело и права знает только сервер, перечитываем ленту
		entries, err := fetchNotes(cfg)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.ID == ev.NoteID {
				f.Upsert(e)
				return nil
			}
		}
		// заметка успела исчезнуть между событием и чтением
		f.Remove(ev.NoteID)
		return nil
	default:
		return fmt.Errorf("unknown event %q", ev.Type)
	}
}

func init() { RegisterCmd(watchCmd{}) }
