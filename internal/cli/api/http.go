// Package api is a thin HTTP layer between CLI commands and the server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"NoteBoard/internal/cli/auth"
	"NoteBoard/internal/middleware"
)

// DoJSON sends a request with an optional JSON payload. If token is
// non-empty, it is passed as the auth cookie.
func DoJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	addAuthCookie(req, token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodGet, url, nil, token)
}

// PutJSON sends a JSON PUT request.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPut, url, payload, token)
}

// Delete sends a DELETE request.
func Delete(url string, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodDelete, url, nil, token)
}

// PostFile uploads a file as the "file" field of a multipart form.
func PostFile(url, fileName, contentType string, content []byte, token string) (*http.Response, []byte, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, nil, err
	}
	if err := w.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	addAuthCookie(req, token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, respBody, nil
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет её в
// файл токена.
func PersistAuthFromResponse(resp *http.Response, tokenFile string) error {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AuthCookieName && c.Value != "" {
			return auth.SaveToken(tokenFile, c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}

func addAuthCookie(req *http.Request, token string) {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	}
}
