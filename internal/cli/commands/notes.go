package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/avatar"
	"NoteBoard/internal/cli/feed"
	"NoteBoard/internal/config"
	"context"
	"fmt"
	"net/http"
)

type notesCmd struct{}

func (notesCmd) Name() string { return "notes" }
func (notesCmd) Description() string {
	return "Показать ленту заметок с доступными действиями"
}
func (notesCmd) Usage() string { return "notes" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	entries, err := fetchNotes(cfg)
	if err != nil {
		return err
	}

	f := &feed.Feed{}
	f.Replace(entries)
	if f.Len() == 0 {
		fmt.Fprintln(Out, "Лента пуста")
		return nil
	}

	// аватары владельцев прогреваем заранее, каждый ref качается один раз
	cache := avatar.NewCache(cfg.AvatarCacheDir, avatarFetcher(cfg))
	refs := make([]string, 0, f.Len())
	for _, e := range f.Entries() {
		refs = append(refs, e.OwnerAvatarRef)
	}
	cache.Prefetch(refs)

	for _, e := range f.Entries() {
		printEntry(e)
	}
	fmt.Fprintf(Out, "Всего: %d\n", f.Len())
	return nil
}

// avatarFetcher скачивает блоб аватара по имени.
func avatarFetcher(cfg *config.Config) avatar.FetchFunc {
	return func(ref string) ([]byte, error) {
		resp, body, err := api.GetJSON(endpoint(cfg, "/api/avatars/"+ref), "")
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("server status %d", resp.StatusCode)
		}
		return body, nil
	}
}

func init() { RegisterCmd(notesCmd{}) }
