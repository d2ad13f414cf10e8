package auth

import (
	"context"
	"time"

	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
	"github.com/tecniservice/bitacoras-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase inicio de sesión y resolución de la sesión activa.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt, exige cuenta activa y
// emite el token de sesión. Credenciales inválidas nunca distinguen entre
// "no existe" y "password incorrecto".
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NuevoErrorValidacion("email", "email y password son requeridos")
	}
	u, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoAutenticado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutenticado
	}
	if !u.Activo {
		return nil, domain.ErrNoAutenticado
	}
	tok, err := token.Emitir(uc.jwtCfg.Secret, u.Email, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: tok, Usuario: *ToUsuarioResponse(u)}, nil
}

// Sesion resuelve el usuario de una sesión ya validada (email del payload).
// Si el usuario desapareció o fue desactivado la sesión deja de ser válida.
func (uc *AuthUseCase) Sesion(ctx context.Context, email string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Activo {
		return nil, domain.ErrNoAutenticado
	}
	return ToUsuarioResponse(u), nil
}

// SeedMaster siembra el usuario maestro si no existe (idempotente: si el email
// ya está registrado no hace nada). Password vacío deshabilita la siembra.
func (uc *AuthUseCase) SeedMaster(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existente, err := uc.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existente != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.usuarioRepo.Create(ctx, &entity.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       "master",
		Rol:          entity.RolAdmin,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// ToUsuarioResponse proyección pública del usuario (sin hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Rol:       u.Rol,
		Zona:      u.Zona,
		Telefono:  u.Telefono,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
