package app

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-pool/internal/config"
	"talent-pool/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type nopDB struct{}

func (nopDB) Ping(context.Context) error                                   { return nil }
func (nopDB) Close() error                                                 { return nil }
func (nopDB) Exec(context.Context, string, ...any) (int64, error)          { return 0, nil }
func (nopDB) Query(context.Context, string, ...any) (database.Rows, error) { return nil, nil }
func (nopDB) QueryRow(context.Context, string, ...any) database.Row        { return nil }
func (nopDB) Begin(context.Context) (database.Tx, error)                   { return nil, nil }
func (nopDB) SQLDB() *sql.DB                                               { return nil }

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	require.Error(t, err)
}

func TestNew_RoutesAndAuthFallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := config.Config{App: config.AppConfig{AppName: "talent-pool"}}
	a := New(newContainer(cfg, zap.New(core), nopDB{}))

	assert.Equal(t, 1, logs.FilterMessage("JWT_ACCESS_SECRET not set, role checks disabled").Len())

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
