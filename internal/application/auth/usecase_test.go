package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autolux-api/internal/application/auth"
	"github.com/jhoicas/autolux-api/internal/application/dto"
	"github.com/jhoicas/autolux-api/internal/domain"
	"github.com/jhoicas/autolux-api/internal/domain/entity"
	"github.com/jhoicas/autolux-api/internal/testutil"
	pkgjwt "github.com/jhoicas/autolux-api/pkg/jwt"
)

var jwtCfg = pkgjwt.Config{
	Secret:     "test-secret",
	Issuer:     "autolux-test",
	Audience:   "autolux-ui-test",
	ExpMinutes: 120,
}

func newAuthUC() (*auth.AuthUseCase, *testutil.FakeUserRepo) {
	repo := &testutil.FakeUserRepo{}
	return auth.NewAuthUseCase(repo, jwtCfg), repo
}

func TestRegister_HasheaYAsignaRolPorDefecto(t *testing.T) {
	uc, repo := newAuthUC()

	err := uc.Register(dto.RegisterRequest{Username: "pedro", Password: "secreto1", ConfirmPassword: "secreto1"})
	require.NoError(t, err)
	require.Len(t, repo.Users, 1)

	u := repo.Users[0]
	assert.Equal(t, entity.RoleAdmin, u.Role, "sin rol explícito se asigna admin")
	assert.NotEqual(t, "secreto1", u.PasswordHash, "el password nunca se guarda en claro")
	assert.NotEmpty(t, u.ID)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, repo := newAuthUC()

	require.NoError(t, uc.Register(dto.RegisterRequest{Username: "pedro", Password: "secreto1", ConfirmPassword: "secreto1"}))
	err := uc.Register(dto.RegisterRequest{Username: "pedro", Password: "otra-clave", ConfirmPassword: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, repo.Users, 1, "el registro duplicado no debe escribir")
}

func TestLogin_EmiteTokenValido(t *testing.T) {
	uc, _ := newAuthUC()
	require.NoError(t, uc.Register(dto.RegisterRequest{Username: "pedro", Password: "secreto1", ConfirmPassword: "secreto1"}))

	out, err := uc.Login(dto.LoginRequest{Username: "pedro", Password: "secreto1"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(jwtCfg, out.Token)
	require.NoError(t, err, "el token emitido debe validar")
	assert.Equal(t, "pedro", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC()
	require.NoError(t, uc.Register(dto.RegisterRequest{Username: "pedro", Password: "secreto1", ConfirmPassword: "secreto1"}))

	_, err := uc.Login(dto.LoginRequest{Username: "pedro", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_VerificaLaActual(t *testing.T) {
	uc, repo := newAuthUC()
	require.NoError(t, uc.Register(dto.RegisterRequest{Username: "pedro", Password: "secreto1", ConfirmPassword: "secreto1"}))
	userID := repo.Users[0].ID

	err := uc.ChangePassword(userID, dto.ChangePasswordRequest{CurrentPassword: "equivocada", NewPassword: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, uc.ChangePassword(userID, dto.ChangePasswordRequest{CurrentPassword: "secreto1", NewPassword: "nueva-clave"}))

	// La clave vieja deja de servir y la nueva funciona.
	_, err = uc.Login(dto.LoginRequest{Username: "pedro", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(dto.LoginRequest{Username: "pedro", Password: "nueva-clave"})
	assert.NoError(t, err)
}

func TestChangePassword_UsuarioDesaparecido(t *testing.T) {
	uc, _ := newAuthUC()
	err := uc.ChangePassword("no-existe", dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "bbbbbb"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
