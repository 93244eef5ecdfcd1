package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN_Postgres(t *testing.T) {
	c := &DatabaseConfig{Type: "postgres", Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	got := c.GetDSN()
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", got)
}

func TestDatabaseConfig_GetDSN_MySQL(t *testing.T) {
	c := &DatabaseConfig{Type: "mysql", Host: "h", Port: 3306, User: "u", Password: "p", DBName: "d"}
	got := c.GetDSN()
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", got)
}

func TestDatabaseConfig_GetDSN_SQLite(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "data", "app.sqlite")
	c := &DatabaseConfig{Type: "sqlite", DBName: dbPath}
	got := c.GetDSN()
	assert.Equal(t, dbPath, got)
	// Directory for sqlite DB should be created
	_, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestDatabaseConfig_GetDSN_Unknown(t *testing.T) {
	c := &DatabaseConfig{Type: "unknown"}
	assert.Equal(t, "", c.GetDSN())
}

func TestAPIServerConfig_SetDefaults(t *testing.T) {
	c := &APIServerConfig{}
	c.setDefaults()

	assert.Equal(t, 5000, c.Server.Port)
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.Equal(t, "./data/phongtro.db", c.Database.DBName)
	assert.Equal(t, 24*time.Hour, c.JWT.Duration)
	assert.Equal(t, "configs/i18n", c.I18n.Path)
	assert.Equal(t, "vi", c.I18n.DefaultLanguage)
	assert.Equal(t, "noop", c.Notifier.Type)
	assert.Equal(t, BillingConfig{ElectricityPrice: 3500, WaterPrice: 15000, InternetFee: 100000, DueDay: 5}, c.Billing)
	assert.Equal(t, "phongtro", c.Metrics.Namespace)
	assert.Equal(t, "phongtro-apiserver", c.Tracing.ServiceName)
}

func TestAPIServerConfig_SetDefaults_KeepsExplicit(t *testing.T) {
	c := &APIServerConfig{
		Server:   ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Database: DatabaseConfig{Type: "postgres", DBName: "rental"},
		JWT:      JWTConfig{Duration: time.Hour},
		I18n:     I18nConfig{Path: "/etc/i18n", DefaultLanguage: "en"},
		Notifier: NotifierConfig{Type: "redis"},
		Billing:  BillingConfig{ElectricityPrice: 4000, WaterPrice: 20000, InternetFee: 50000, DueDay: 10},
	}
	c.setDefaults()

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", c.Database.Type)
	assert.Equal(t, "rental", c.Database.DBName)
	assert.Equal(t, time.Hour, c.JWT.Duration)
	assert.Equal(t, "en", c.I18n.DefaultLanguage)
	assert.Equal(t, "redis", c.Notifier.Type)
	assert.Equal(t, BillingConfig{ElectricityPrice: 4000, WaterPrice: 20000, InternetFee: 50000, DueDay: 10}, c.Billing)
}

func TestAPIServerConfig_SetDefaults_DueDay(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 5},
		{-1, 5},
		{1, 1},
		{28, 28},
		{29, 5},
		{31, 5},
	}
	for _, tt := range tests {
		c := &APIServerConfig{Billing: BillingConfig{DueDay: tt.in}}
		c.setDefaults()
		assert.Equal(t, tt.want, c.Billing.DueDay, "due day %d", tt.in)
	}
}
