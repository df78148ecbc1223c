package auth

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/jwt"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 6

// MaxUsernameLength longitud máxima del username.
const MaxUsernameLength = 30

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y del propio perfil.
type AuthUseCase struct {
	repo    repository.PrincipalRepository
	storage usecase.FileStorage
	jwtCfg  JWTConfig
	log     *logger.Logger
	now     func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.PrincipalRepository, storage usecase.FileStorage, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{repo: repo, storage: storage, jwtCfg: jwtCfg, log: log.Component("auth"), now: time.Now}
}

func validatePassword(field, pw string) error {
	if len([]rune(pw)) < MinPasswordLength {
		return domain.NewValidationError(field, "debe tener al menos 6 caracteres")
	}
	return nil
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Token verifica username/password, registra last_login y emite el JWT.
// Credenciales erróneas devuelven ErrInvalidCredential; cuenta inactiva, ErrForbidden.
func (uc *AuthUseCase) Token(ctx context.Context, in dto.TokenRequest) (*dto.TokenResponse, error) {
	p, err := uc.repo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	if !p.IsActive {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	if err := uc.repo.TouchLastLogin(ctx, p.ID, now); err != nil {
		return nil, err
	}
	p.LastLogin = &now
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.ID, p.Username, jwt.RoleFor(p.IsStaff, p.IsSuperuser), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("principal_id", p.ID).Msg("token emitido")
	return &dto.TokenResponse{Token: token, User: usecase.ToPrincipalResponse(p, uc.storage)}, nil
}

// CreatePrincipal crea una cuenta activa; actorID queda como creador.
func (uc *AuthUseCase) CreatePrincipal(ctx context.Context, actorID string, in dto.CreatePrincipalRequest) (*dto.PrincipalResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", "es requerido")
	}
	if len([]rune(username)) > MaxUsernameLength {
		return nil, domain.NewValidationError("username", "máximo 30 caracteres")
	}
	if err := validatePassword("password", in.Password); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	title := in.Title
	if title == "" {
		title = entity.DefaultPrincipalTitle
	}
	p := &entity.Principal{
		ID:            uuid.New().String(),
		Username:      username,
		Name:          in.Name,
		Title:         title,
		Address:       in.Address,
		Phone:         in.Phone,
		PostalCode:    in.PostalCode,
		BirthDate:     in.BirthDate.TimePtr(),
		Email:         in.Email,
		NationalityID: in.NationalityID,
		PasswordHash:  hash,
		IsActive:      true,
		IsStaff:       in.IsStaff,
		IsSuperuser:   in.IsSuperuser,
		CreatedAt:     uc.now(),
	}
	if actorID != "" {
		p.CreatedBy = &actorID
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrUsernameExists
		}
		return nil, err
	}
	uc.log.Info().Str("principal_id", p.ID).Str("actor_id", actorID).Msg("principal creado")
	out := usecase.ToPrincipalResponse(p, uc.storage)
	return &out, nil
}

func (uc *AuthUseCase) principal(ctx context.Context, id string) (*entity.Principal, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

// Authorize recarga el principal de un token ya validado. Un principal
// borrado devuelve ErrUnauthorized y uno inactivo ErrForbidden, así los
// cambios de flags aplican a tokens emitidos antes.
func (uc *AuthUseCase) Authorize(ctx context.Context, id string) (*entity.Principal, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	if !p.IsActive {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// Me perfil del principal autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, id string) (*dto.PrincipalResponse, error) {
	p, err := uc.principal(ctx, id)
	if err != nil {
		return nil, err
	}
	out := usecase.ToPrincipalResponse(p, uc.storage)
	return &out, nil
}

// UpdateMe actualiza los campos enviados; si llega password se rehashea.
func (uc *AuthUseCase) UpdateMe(ctx context.Context, id string, in dto.UpdateMeRequest) (*dto.PrincipalResponse, error) {
	p, err := uc.principal(ctx, id)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Name, in.Name)
	set(&p.Title, in.Title)
	set(&p.Address, in.Address)
	set(&p.Phone, in.Phone)
	set(&p.PostalCode, in.PostalCode)
	set(&p.Email, in.Email)
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate.TimePtr()
	}
	if in.NationalityID != nil {
		p.NationalityID = in.NationalityID
		if *in.NationalityID == "" {
			p.NationalityID = nil
		}
	}
	var hash string
	if in.Password != nil {
		if err := validatePassword("password", *in.Password); err != nil {
			return nil, err
		}
		if hash, err = hashPassword(*in.Password); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if hash != "" {
		if err := uc.repo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}
	out := usecase.ToPrincipalResponse(p, uc.storage)
	return &out, nil
}

// ChangePassword exige la contraseña anterior correcta.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, id string, in dto.ChangePasswordRequest) error {
	p, err := uc.principal(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.NewValidationError("old_password", "la contraseña actual no es correcta")
	}
	if err := validatePassword("new_password", in.NewPassword); err != nil {
		return err
	}
	hash, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	uc.log.Info().Str("principal_id", id).Msg("contraseña cambiada")
	return nil
}

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// UploadPicture guarda la imagen de perfil en uploads/user.
func (uc *AuthUseCase) UploadPicture(ctx context.Context, id, filename string, r io.Reader) (*dto.ImageResponse, error) {
	if !imageExts[strings.ToLower(path.Ext(filename))] {
		return nil, domain.NewValidationError("image", "formato de imagen no soportado")
	}
	if _, err := uc.principal(ctx, id); err != nil {
		return nil, err
	}
	stored, err := uc.storage.Save(ctx, usecase.FolderUser, filename, r)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateImage(ctx, id, stored); err != nil {
		return nil, err
	}
	return &dto.ImageResponse{Image: uc.storage.URL(stored)}, nil
}
