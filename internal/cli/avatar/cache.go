// Package avatar разрешает ссылки на аватары в локальные файлы.
package avatar

import (
	"fmt"
	"os"
	"path/filepath"
)

// Placeholder is returned for an empty ref and when a download fails:
// a missing picture never breaks rendering.
const Placeholder = ""

// FetchFunc downloads a blob by name and returns its content.
type FetchFunc func(ref string) ([]byte, error)

// Cache хранит скачанные аватары в локальном каталоге. Повторное
// разрешение той же ссылки сети не касается.
type Cache struct {
	dir   string
	fetch FetchFunc
}

// NewCache создаёт кеш в каталоге dir.
func NewCache(dir string, fetch FetchFunc) *Cache {
	return &Cache{dir: dir, fetch: fetch}
}

// Resolve возвращает путь к локальному файлу аватара. Пустая ссылка —
// плейсхолдер без обращения к сети; ошибка скачивания тоже даёт
// плейсхолдер: это не фатально.
func (c *Cache) Resolve(ref string) string {
	if ref == "" {
		return Placeholder
	}

	path := filepath.Join(c.dir, filepath.Base(ref))
	if _, err := os.Stat(path); err == nil {
		return path
	}

	content, err := c.fetch(ref)
	if err != nil {
		return Placeholder
	}
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return Placeholder
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return Placeholder
	}
	return path
}

// Prefetch разрешает каждую уникальную ссылку ровно один раз и возвращает
// карту ссылка→локальный путь. Пустые ссылки пропускаются.
func (c *Cache) Prefetch(refs []string) map[string]string {
	out := make(map[string]string, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, done := out[ref]; done {
			continue
		}
		out[ref] = c.Resolve(ref)
	}
	return out
}

// Clear удаляет содержимое кеша.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cache dir: %w", err)
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
