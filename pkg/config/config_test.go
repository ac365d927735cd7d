package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "fishing_stock", cfg.Storage.Key)
	assert.Equal(t, "127.0.0.1:3000", cfg.Desktop.Addr())
	assert.Equal(t, "http://localhost:3000", cfg.Desktop.URL())
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.Desktop.OpenBrowser)
	assert.False(t, cfg.Backup.Enabled(), "sin endpoint las copias quedan deshabilitadas")
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "Redis")
	v.Set("HTTP_PORT", "9090")
	v.Set("DESKTOP_OPEN_BROWSER", "false")
	v.Set("BACKUP_ENDPOINT", "localhost:9000")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Desktop.OpenBrowser)
	assert.True(t, cfg.Backup.Enabled())
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pesca", Password: "p@ss:word", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://pesca:p%40ss%3Aword@db:5432/stock?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
