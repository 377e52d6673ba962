package commands

import (
	"NoteBoard/internal/config"
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// newTestConfig даёт конфиг, у которого все клиентские артефакты
// (токен, кеш аватаров) живут в temp, а сервер — по указанному адресу.
func newTestConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerURL:      serverURL,
		TokenFile:      filepath.Join(dir, "auth_token"),
		AvatarCacheDir: filepath.Join(dir, "avatars"),
	}
}

// captureOut перенаправляет вывод CLI в буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}

// feedIn подменяет ввод подтверждений.
func feedIn(t *testing.T, input string) {
	t.Helper()
	prev := In
	In = strings.NewReader(input)
	t.Cleanup(func() { In = prev })
}
