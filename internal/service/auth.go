package service

import (
	"NoteBoard/internal/mailer"
	"NoteBoard/internal/model"
	"NoteBoard/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailRequired — пустой или неправдоподобный email.
	ErrEmailRequired = errors.New("email is required")
	// ErrTokenInvalid — токен не найден, повреждён или уже использован.
	ErrTokenInvalid = errors.New("login token is invalid or already used")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("login token expired")
)

// AuthService выдаёт magic-link токены и обменивает их на сессии.
type AuthService struct {
	users  repo.UserRepository
	tokens repo.LoginTokenRepository
	mail   mailer.Mailer

	tokenTTL time.Duration
	baseURL  string
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(users repo.UserRepository, tokens repo.LoginTokenRepository, mail mailer.Mailer, tokenTTL time.Duration, baseURL string) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		mail:     mail,
		tokenTTL: tokenTTL,
		baseURL:  baseURL,
	}
}

// RequestMagicLink создаёт пользователя при первом входе, выпускает
// одноразовый токен и отправляет ссылку. Сам токен в базе не хранится —
// только bcrypt-хеш.
func (s *AuthService) RequestMagicLink(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailRequired
	}

	if _, err := s.ensureUser(ctx, email); err != nil {
		return err
	}

	tokenID := uuid.NewString()
	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash login token: %w", err)
	}

	err = s.tokens.Create(ctx, &model.LoginToken{
		ID:        tokenID,
		Email:     email,
		TokenHash: hash,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	})
	if err != nil {
		return fmt.Errorf("store login token: %w", err)
	}

	// токен отдаём как "<id>.<secret>", ссылка ведёт на verify
	link := fmt.Sprintf("%s/api/auth/verify?token=%s.%s", s.baseURL, tokenID, secret)
	return s.mail.SendLoginLink(email, link)
}

// VerifyMagicLink обменивает одноразовый токен на пользователя.
// Токен сгорает при первом успешном обмене.
func (s *AuthService) VerifyMagicLink(ctx context.Context, token string) (*model.User, error) {
	id, secret, ok := strings.Cut(token, ".")
	if !ok || id == "" || secret == "" {
		return nil, ErrTokenInvalid
	}

	now := time.Now().UTC()
	stored, err := s.tokens.GetActive(ctx, id, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("load login token: %w", err)
	}

	if bcrypt.CompareHashAndPassword(stored.TokenHash, []byte(secret)) != nil {
		return nil, ErrTokenInvalid
	}

	if err := s.tokens.MarkUsed(ctx, id, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("consume login token: %w", err)
	}

	return s.users.GetByEmail(ctx, stored.Email)
}

// ExchangeOAuth провижинит пользователя, уже аутентифицированного внешним
// OAuth-провайдером. Проверка подлинности subject — забота вызывающего
// (хендлер обменивает код у провайдера до этого вызова).
func (s *AuthService) ExchangeOAuth(ctx context.Context, provider, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrEmailRequired
	}
	if provider == "" {
		return nil, errors.New("oauth provider is required")
	}
	return s.ensureUser(ctx, email)
}

// ensureUser возвращает пользователя, создавая его при первом входе.
func (s *AuthService) ensureUser(ctx context.Context, email string) (*model.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return s.users.Create(ctx, &model.User{ID: uuid.NewString(), Email: email})
}
