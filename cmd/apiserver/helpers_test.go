package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	cfg := &config.APIServerConfig{}
	lg := initLogger(cfg)
	require.NotNil(t, lg)
	_ = lg.Sync()
}

func TestInitDatabase_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "apiserver.db")
	db := initDatabase(zap.NewNop(), &config.DatabaseConfig{Type: "sqlite", DBName: dbPath})
	t.Cleanup(func() { _ = db.Close() })
	assert.NoError(t, db.Ping(context.Background()))
}

func TestInitNotifier_Noop(t *testing.T) {
	n := initNotifier(context.Background(), zap.NewNop(), &config.NotifierConfig{Type: "noop"})
	require.NotNil(t, n)
	assert.NoError(t, n.Close())
}

func TestInitI18n(t *testing.T) {
	initI18n(&config.I18nConfig{Path: filepath.Join("..", "..", "configs", "i18n"), DefaultLanguage: "en"})
	t.Cleanup(func() { i18n.SetDefaultLanguage("vi") })
	assert.Equal(t, "en", i18n.DefaultLanguage())
	assert.NotNil(t, i18n.GetTranslator())
}

func TestInitRouter_Constructs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lg := zap.NewNop()
	db := initDatabase(lg, &config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	t.Cleanup(func() { _ = db.Close() })
	n := initNotifier(context.Background(), lg, &config.NotifierConfig{})

	cfg := &config.APIServerConfig{
		JWT:     config.JWTConfig{SecretKey: "this-is-a-very-long-secret-key-for-testing-purposes-only", Duration: time.Hour},
		Billing: config.BillingConfig{ElectricityPrice: 3500, WaterPrice: 15000, InternetFee: 100000, DueDay: 5},
		Metrics: config.MetricsConfig{Enabled: true, Namespace: "apiserver_test"},
	}
	r := initRouter(db, n, cfg, lg)
	require.NotNil(t, r)

	for _, path := range []string{"/health", "/api/health", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
