// Package mailer отвечает за доставку magic-link писем.
package mailer

import "go.uber.org/zap"

// Mailer доставляет ссылку для входа на адрес пользователя.
type Mailer interface {
	SendLoginLink(email, link string) error
}

// LogMailer — dev-реализация: письмо не уходит, ссылка пишется в лог.
type LogMailer struct {
	logger *zap.SugaredLogger
}

// NewLogMailer создаёт лог-мейлер.
func NewLogMailer(logger *zap.SugaredLogger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendLoginLink(email, link string) error {
	m.logger.Infow("magic link issued", "email", email, "link", link)
	return nil
}
