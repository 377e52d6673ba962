package commands

import (
	"NoteBoard/internal/cli/api"
	"NoteBoard/internal/cli/session"
	"NoteBoard/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

type avatarCmd struct{}

func (avatarCmd) Name() string { return "avatar" }
func (avatarCmd) Description() string {
	return "Загрузить картинку и сделать её своим аватаром"
}
func (avatarCmd) Usage() string { return "avatar <path-to-image>" }

func (avatarCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token := session.Token(cfg.TokenFile)
	if token == "" {
		return errors.New("not logged in")
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	resp, body, err := api.PostFile(endpoint(cfg, "/api/avatars"), filepath.Base(path), contentType, content, token)
	if err != nil {
		return err
	}
	if err := requireStatus(resp, body, http.StatusCreated); err != nil {
		return err
	}

	var uploaded struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	// привязываем загруженный блоб к профилю; имя пользователя не меняем
	current, err := currentUsername(cfg, token)
	if err != nil {
		return err
	}
	payload := map[string]any{"username": current, "avatar_ref": uploaded.Name}
	resp, body, err = api.PutJSON(endpoint(cfg, "/api/profile"), payload, token)
	if err != nil {
		return err
	}
	if err := requireStatus(resp, body, http.StatusOK); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Avatar set: %s\n", uploaded.Name)
	return nil
}

// currentUsername возвращает имя из сохранённого профиля; без профиля
// аватар привязывать не к чему.
func currentUsername(cfg *config.Config, token string) (string, error) {
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/profile"), token)
	if err != nil {
		return "", err
	}
	if resp.StatusCode == http.StatusNotFound {
		return "", errors.New("save a profile first: profile set <username>")
	}
	if err := requireStatus(resp, body, http.StatusOK); err != nil {
		return "", err
	}
	var p profileJSON
	if err := json.Unmarshal(body, &p); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return p.Username, nil
}

func init() { RegisterCmd(avatarCmd{}) }
