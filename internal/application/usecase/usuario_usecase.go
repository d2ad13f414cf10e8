package usecase

import (
	"context"
	"time"

	"github.com/tecniservice/bitacoras-api/internal/application/auth"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase administración de usuarios (solo admin). Los usuarios nunca se
// eliminan físicamente; se desactivan.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Crear da de alta un usuario con el password hasheado con bcrypt.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	violaciones := map[string]string{}
	if in.Email == "" {
		violaciones["email"] = "es requerido"
	}
	if len(in.Password) < 8 {
		violaciones["password"] = "debe tener al menos 8 caracteres"
	}
	if in.Rol != entity.RolAdmin && in.Rol != entity.RolTecnico {
		violaciones["rol"] = "debe ser admin o tecnico"
	}
	if len(violaciones) > 0 {
		return nil, &domain.ErrorValidacion{Campos: violaciones}
	}
	existente, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailYaRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          in.Rol,
		Zona:         in.Zona,
		Telefono:     in.Telefono,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// ObtenerPorID busca un usuario por ID.
func (uc *UsuarioUseCase) ObtenerPorID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return auth.ToUsuarioResponse(u), nil
}

// Listar usuarios con paginación.
func (uc *UsuarioUseCase) Listar(ctx context.Context, limit, offset int) ([]*dto.UsuarioResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, auth.ToUsuarioResponse(u))
	}
	return out, nil
}

// Actualizar edita nombre, rol, zona y teléfono. Email y password no se tocan aquí.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if in.Rol != "" && in.Rol != entity.RolAdmin && in.Rol != entity.RolTecnico {
		return nil, domain.NuevoErrorValidacion("rol", "debe ser admin o tecnico")
	}
	if in.Nombre != "" {
		u.Nombre = in.Nombre
	}
	if in.Rol != "" {
		u.Rol = in.Rol
	}
	if in.Zona != "" {
		u.Zona = in.Zona
	}
	if in.Telefono != "" {
		u.Telefono = in.Telefono
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// Desactivar marca el usuario inactivo (baja lógica).
func (uc *UsuarioUseCase) Desactivar(ctx context.Context, id int64) error {
	ok, err := uc.repo.Desactivar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}
