// Package session inspects the locally stored login session.
package session

import (
	"errors"
	"fmt"
	"time"

	"NoteBoard/internal/cli/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNotLoggedIn — токена нет, пользователь не входил или вышел.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionExpired — токен есть, но срок действия истёк.
	ErrSessionExpired = errors.New("session expired, log in again")
)

// Session — локально известные факты о текущем входе.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// Load reads the stored token and parses its claims without verifying the
// signature: the server is the authority, the client only introspects who it
// thinks it is and until when.
func Load(tokenFile string) (*Session, error) {
	token, err := auth.LoadToken(tokenFile)
	if err != nil {
		return nil, ErrNotLoggedIn
	}

	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("stored token is malformed: %w", err)
	}
	if claims.UserID == "" {
		return nil, ErrNotLoggedIn
	}

	s := &Session{UserID: claims.UserID, Email: claims.Email}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
		if time.Now().After(s.ExpiresAt) {
			return nil, ErrSessionExpired
		}
	}
	return s, nil
}

// Token returns the raw stored token for outgoing requests, or empty when
// not logged in.
func Token(tokenFile string) string {
	token, err := auth.LoadToken(tokenFile)
	if err != nil {
		return ""
	}
	return token
}

// Clear выходит локально: удаляет файл токена.
func Clear(tokenFile string) error {
	return auth.ClearToken(tokenFile)
}
