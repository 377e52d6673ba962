package session

import (
	"context"
	"net/http"
	"strings"

	"NoteBoard/internal/middleware"

	"github.com/gorilla/websocket"
)

// Event — уведомление сервера об изменении заметки.
type Event struct {
	Type   string `json:"type"`
	NoteID int64  `json:"note_id,omitempty"`
}

// Subscribe opens a WebSocket to the server's event stream and returns a
// channel of change events. The channel closes when the connection drops or
// ctx is cancelled.
func Subscribe(ctx context.Context, serverURL, token string) (<-chan Event, error) {
	wsURL := strings.TrimRight(serverURL, "/") + "/api/events"
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)

	header := http.Header{}
	if token != "" {
		header.Set("Cookie", middleware.AuthCookieName+"="+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer conn.Close()
		for {
			var ev Event
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	// закрываем соединение по отмене контекста, чтобы ReadJSON вернулся
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	return events, nil
}
