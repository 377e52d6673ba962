package handlers_test

import (
	"NoteBoard/internal/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestProfileHandler_Get(t *testing.T) {
	t.Run("existing profile", func(t *testing.T) {
		router, cfg, m := newHandlersTestRouter(t)

		m.profile.On("Get", mock.Anything, "u-1").
			Return(&model.Profile{UserID: "u-1", Username: "gopher", Website: "https://go.dev"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		addAuth(t, req, "u-1", "u@example.com", cfg.AuthSecret)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"gopher"`)
		assert.Contains(t, rr.Body.String(), `"website":"https://go.dev"`)
	})

	t.Run("profile never saved", func(t *testing.T) {
		router, cfg, m := newHandlersTestRouter(t)

		m.profile.On("Get", mock.Anything, "u-1").Return(nil, gorm.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		addAuth(t, req, "u-1", "u@example.com", cfg.AuthSecret)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		router, _, _ := newHandlersTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProfileHandler_Upsert(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		router, cfg, m := newHandlersTestRouter(t)

		m.profile.On("Get", mock.Anything, "u-1").Return(nil, gorm.ErrRecordNotFound)
		m.profile.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/profile",
			strings.NewReader(`{"username":"gopher","website":"https://go.dev"}`))
		addAuth(t, req, "u-1", "u@example.com", cfg.AuthSecret)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"gopher"`)
		m.profile.AssertExpectations(t)
	})

	// Тест: короткое имя отклоняется до обращения к хранилищу
	t.Run("short username", func(t *testing.T) {
		router, cfg, m := newHandlersTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/api/profile",
			strings.NewReader(`{"username":"ab"}`))
		addAuth(t, req, "u-1", "u@example.com", cfg.AuthSecret)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.profile.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("anonymous", func(t *testing.T) {
		router, _, _ := newHandlersTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/api/profile",
			strings.NewReader(`{"username":"gopher"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
