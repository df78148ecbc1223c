package auth_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/auth"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-crm-api/pkg/jwt"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

const secret = "test-secret"

type nopStorage struct{ saved []string }

func (s *nopStorage) Save(_ context.Context, folder, name string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	p := folder + "/" + name
	s.saved = append(s.saved, p)
	return p, nil
}

func (s *nopStorage) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (s *nopStorage) URL(p string) string { return "/media/" + p }

func newAuth(t *testing.T) (*auth.AuthUseCase, repository.PrincipalRepository) {
	t.Helper()
	repo := memory.NewStore().Repositories().Principals
	uc := auth.NewAuthUseCase(repo, &nopStorage{}, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, logger.Nop())
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Token
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_EmiteRolYRegistraLastLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	_, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "root", Password: "secreto", IsSuperuser: true})
	require.NoError(t, err)

	res, err := uc.Token(ctx, dto.TokenRequest{Username: "root", Password: "secreto"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.NotNil(t, res.User.LastLogin)

	claims, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleSuperuser, claims.Role)
	assert.Equal(t, "root", claims.Username)
}

func TestToken_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	_, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)

	_, err = uc.Token(ctx, dto.TokenRequest{Username: "ana", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	_, err = uc.Token(ctx, dto.TokenRequest{Username: "nadie", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestToken_CuentaInactiva(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth(t)
	p, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)
	_, err = repo.SetFlag(ctx, p.ID, repository.FlagActive, false)
	require.NoError(t, err)

	_, err = uc.Token(ctx, dto.TokenRequest{Username: "ana", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthorize_EstadoVigenteDelPrincipal(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth(t)
	p, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto", IsStaff: true})
	require.NoError(t, err)

	got, err := uc.Authorize(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleStaff, jwt.RoleFor(got.IsStaff, got.IsSuperuser))

	_, err = repo.ToggleFlag(ctx, p.ID, repository.FlagStaff)
	require.NoError(t, err)
	got, err = uc.Authorize(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, jwt.RoleFor(got.IsStaff, got.IsSuperuser), "el rol sigue a los flags actuales")

	_, err = repo.SetFlag(ctx, p.ID, repository.FlagActive, false)
	require.NoError(t, err)
	_, err = uc.Authorize(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = uc.Authorize(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y perfil propio
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePrincipal_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)

	_, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "123"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "password", ve.Field)

	_, err = uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: strings.Repeat("x", 31), Password: "secreto"})
	ve, ok = domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "username", ve.Field)

	p, err := uc.CreatePrincipal(ctx, "creador", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "BTC Admin", p.Title)
	assert.True(t, p.IsActive)

	_, err = uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestUpdateMe_PasswordOpcional(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	p, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)

	name := "Ana López"
	out, err := uc.UpdateMe(ctx, p.ID, dto.UpdateMeRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana López", out.Name)
	_, err = uc.Token(ctx, dto.TokenRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err, "sin password se conserva la anterior")

	short := "abc"
	_, err = uc.UpdateMe(ctx, p.ID, dto.UpdateMeRequest{Name: &name, Password: &short})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pw := "nueva-clave"
	_, err = uc.UpdateMe(ctx, p.ID, dto.UpdateMeRequest{Password: &pw})
	require.NoError(t, err)
	_, err = uc.Token(ctx, dto.TokenRequest{Username: "ana", Password: "nueva-clave"})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	p, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)

	err = uc.ChangePassword(ctx, p.ID, dto.ChangePasswordRequest{OldPassword: "mal", NewPassword: "otra-clave"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "old_password", ve.Field)

	err = uc.ChangePassword(ctx, p.ID, dto.ChangePasswordRequest{OldPassword: "secreto", NewPassword: "x"})
	ve, ok = domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "new_password", ve.Field)

	require.NoError(t, uc.ChangePassword(ctx, p.ID, dto.ChangePasswordRequest{OldPassword: "secreto", NewPassword: "otra-clave"}))
	_, err = uc.Token(ctx, dto.TokenRequest{Username: "ana", Password: "otra-clave"})
	assert.NoError(t, err)
}

func TestUploadPicture(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth(t)
	p, err := uc.CreatePrincipal(ctx, "", dto.CreatePrincipalRequest{Username: "ana", Password: "secreto"})
	require.NoError(t, err)

	_, err = uc.UploadPicture(ctx, p.ID, "cv.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.UploadPicture(ctx, p.ID, "foto.PNG", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "/media/uploads/user/foto.PNG", out.Image)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/user/foto.PNG", stored.Image)
}
