package jwt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/autolux-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "autolux-test",
	Audience:   "autolux-ui-test",
	ExpMinutes: 120,
}

// Un token recién emitido debe validar y conservar los claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, "user-1", "pedro", "admin")
	require.NoError(t, err, "debe generarse un token válido")

	claims, err := pkgjwt.Parse(testCfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "pedro", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testCfg.Issuer, claims.Issuer)
}

// Un token vencido debe fallar con ErrExpired, no con ErrInvalid.
func TestParse_Expirado(t *testing.T) {
	cfg := testCfg
	cfg.ExpMinutes = -1 // ya venció al emitirse
	tok, err := pkgjwt.Generate(cfg, "user-1", "pedro", "admin")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired, "token vencido debe reportar ErrExpired")
}

// Alterar la firma debe producir ErrInvalid.
func TestParse_FirmaAlterada(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, "user-1", "pedro", "admin")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = pkgjwt.Parse(testCfg, tampered)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

// Un token firmado con otro secret no debe validar.
func TestParse_SecretIncorrecto(t *testing.T) {
	otherCfg := testCfg
	otherCfg.Secret = "otro-secret"
	tok, err := pkgjwt.Generate(otherCfg, "user-1", "pedro", "admin")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

// Issuer y audience se validan en cada parse.
func TestParse_IssuerYAudience(t *testing.T) {
	otherIssuer := testCfg
	otherIssuer.Issuer = "otro-emisor"
	tok, err := pkgjwt.Generate(otherIssuer, "user-1", "pedro", "admin")
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid, "issuer distinto debe rechazarse")

	otherAud := testCfg
	otherAud.Audience = "otra-app"
	tok, err = pkgjwt.Generate(otherAud, "user-1", "pedro", "admin")
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testCfg, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid, "audience distinta debe rechazarse")
}
