package api

import (
	"NoteBoard/internal/cli/auth"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostJSON_SendsPayloadAndCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		c, err := r.Cookie("auth_token")
		assert.NoError(t, err)
		assert.Equal(t, "tok", c.Value)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "v", req["k"])

		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	resp, body, err := PostJSON(srv.URL, map[string]string{"k": "v"}, "tok")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestGetJSON_NoCookieWhenAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("auth_token")
		assert.Error(t, err, "анонимный запрос идёт без cookie")
	}))
	defer srv.Close()

	_, _, err := GetJSON(srv.URL, "")
	assert.NoError(t, err)
}

func TestPostFile_MultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "a.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
	}))
	defer srv.Close()

	_, _, err := PostFile(srv.URL, "a.png", "image/png", []byte{1, 2}, "tok")
	assert.NoError(t, err)
}

// Тест: cookie из ответа сохраняется в файл токена
func TestPersistAuthFromResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "fresh"})
	}))
	defer srv.Close()

	resp, _, err := GetJSON(srv.URL, "")
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "token")
	assert.NoError(t, PersistAuthFromResponse(resp, path))

	saved, err := auth.LoadToken(path)
	assert.NoError(t, err)
	assert.Equal(t, "fresh", saved)
}

func TestPersistAuthFromResponse_NoCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	resp, _, err := GetJSON(srv.URL, "")
	assert.NoError(t, err)

	err = PersistAuthFromResponse(resp, filepath.Join(t.TempDir(), "token"))
	assert.Error(t, err)
}
