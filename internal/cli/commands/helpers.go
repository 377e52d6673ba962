package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/feed"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// endpoint склеивает адрес сервера и путь API.
func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// noteJSON — заметка в том виде, в каком её отдаёт сервер.
type noteJSON struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Note           *string `json:"note"`
	NoteType       int     `json:"note_type"`
	UserID         string  `json:"userid"`
	OwnerUsername  string  `json:"owner_username"`
	OwnerAvatarRef string  `json:"owner_avatar_ref"`
	UpdatedAt      string  `json:"updated_at"`
	CanEdit        bool    `json:"can_edit"`
	CanDelete      bool    `json:"can_delete"`
}

func (n noteJSON) toEntry() feed.Entry {
	e := feed.Entry{
		ID:             n.ID,
		Title:          n.Title,
		NoteType:       n.NoteType,
		OwnerID:        n.UserID,
		OwnerUsername:  n.OwnerUsername,
		OwnerAvatarRef: n.OwnerAvatarRef,
		CanEdit:        n.CanEdit,
		CanDelete:      n.CanDelete,
	}
	if n.Note != nil {
		e.Note = *n.Note
		e.HasBody = true
	}
	if ts, err := time.Parse(time.RFC3339, n.UpdatedAt); err == nil {
		e.UpdatedAt = ts
	}
	return e
}

// fetchNotes загружает ленту с сервера; порядок — updated_at по убыванию.
func fetchNotes(cfg *config.Config) ([]feed.Entry, error) {
	token := session.Token(cfg.TokenFile)
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/notes"), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var notes []noteJSON
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	entries := make([]feed.Entry, 0, len(notes))
	for _, n := range notes {
		entries = append(entries, n.toEntry())
	}
	return entries, nil
}

// printEntry печатает одну строку ленты с маркерами доступных действий.
func printEntry(e feed.Entry) {
	markers := ""
	if e.CanEdit {
		markers += " [edit]"
	}
	if e.CanDelete {
		markers += " [del]"
	}
	owner := e.OwnerUsername
	if owner == "" {
		owner = e.OwnerID
	}
	body := "<locked>"
	if e.HasBody {
		body = e.Note
	}
	fmt.Fprintf(Out, "#%-4d %-24s by %-16s %s%s\n", e.ID, e.Title, owner, body, markers)
}

// requireStatus возвращает ошибку с телом ответа при неожиданном статусе.
func requireStatus(resp *http.Response, body []byte, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
