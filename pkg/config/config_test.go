package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/pkg/config"
)

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

// Un puerto no numérico debe fallar la carga, no quedar en cero.
func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("DB_PORT", "no-numérico")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoad_ExpiracionJWTInvalida(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "1h")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_MINUTES")
}

// DATABASE_URL, si está definido, manda sobre los campos sueltos.
func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/app?sslmode=require",
		Host:        "ignorado", Port: 1, User: "x", Password: "y", DBName: "z", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/app?sslmode=require", c.ConnectionString())

	c.DatabaseURL = ""
	assert.Equal(t, "postgres://x:y@ignorado:1/z?sslmode=disable", c.ConnectionString())
}
