package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talent-pool/internal/pkg/jwt"
	"talent-pool/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(logger *zap.Logger) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(logger).Middleware())
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) response.SemanticResponse {
	t.Helper()
	defer resp.Body.Close()
	var out response.SemanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newTestApp(nil)
	app.Get("/missing", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Candidate not found", nil, errors.New("no rows"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, fiber.StatusNotFound, env.Status)
	assert.Equal(t, "Candidate not found", env.Message)
}

func TestErrorMiddleware_HidesInternalCause(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := newTestApp(zap.New(core))
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pq: secret detail", nil, errors.New("db down"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, fiber.StatusInternalServerError, env.Status)
	assert.Equal(t, response.MessageInternalServerError, env.Message)
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := newTestApp(zap.New(core))
	app.Get("/panic", func(c fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestAccessLog_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := newTestApp(zap.New(core))
	app.Get("/ok", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "rid-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "rid-123", resp.Header.Get(HeaderRequestID))

	entries := logs.FilterMessage("http access").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rid-123", entries[0].ContextMap()["rid"])
	assert.EqualValues(t, fiber.StatusOK, entries[0].ContextMap()["status"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
}

func TestAccessLog_UsesErrorStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := newTestApp(zap.New(core))
	app.Get("/bad", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("http access").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.EqualValues(t, fiber.StatusBadRequest, entries[0].ContextMap()["status"])
}

func authApp(mw *AuthMiddleware) *fiber.App {
	app := newTestApp(nil)
	app.Delete("/admin", mw.RequireRoles(jwt.RoleAdmin), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAuthMiddleware_Roles(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Minute)
	app := authApp(NewAuthMiddleware(svc))

	userTok, err := svc.GenerateAccessToken("u", jwt.RoleUser)
	require.NoError(t, err)
	adminTok, err := svc.GenerateAccessToken("a", jwt.RoleAdmin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", header: "", want: fiber.StatusUnauthorized},
		{name: "malformed", header: "Token abc", want: fiber.StatusUnauthorized},
		{name: "invalid", header: "Bearer nope", want: fiber.StatusUnauthorized},
		{name: "wrong role", header: "Bearer " + userTok, want: fiber.StatusForbidden},
		{name: "admin", header: "Bearer " + adminTok, want: fiber.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_DisabledWithoutService(t *testing.T) {
	app := authApp(NewAuthMiddleware(nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
