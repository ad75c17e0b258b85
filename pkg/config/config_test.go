package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autolux-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "autolux-api", cfg.App.Name)
	assert.Equal(t, 120, cfg.JWT.Expiration, "la sesión dura 2 horas por defecto")
	assert.Equal(t, "autolux-api", cfg.JWT.Issuer)
	assert.Equal(t, "autolux-ui", cfg.JWT.Audience)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "clave-de-prueba")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "clave-de-prueba", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word",
		DBName: "autolux", SSLMode: "disable",
	}
	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword", "la contraseña va URL-encoded")
	assert.Contains(t, dsn, "/autolux?sslmode=disable")

	db.DatabaseURL = "postgresql://otro/dsn"
	assert.Equal(t, "postgresql://otro/dsn", db.ConnectionString(), "DATABASE_URL tiene prioridad")
}
