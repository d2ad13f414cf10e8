package usecase

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

// CatalogoUseCase listados de catálogos activos (pass-through).
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// EquiposActivos lista los equipos activos.
func (uc *CatalogoUseCase) EquiposActivos(ctx context.Context) ([]*dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListEquiposActivos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(list))
	for _, e := range list {
		out = append(out, &dto.CatalogoItemResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return out, nil
}

// SistemasActivos lista los sistemas activos.
func (uc *CatalogoUseCase) SistemasActivos(ctx context.Context) ([]*dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListSistemasActivos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(list))
	for _, s := range list {
		out = append(out, &dto.CatalogoItemResponse{ID: s.ID, Nombre: s.Nombre})
	}
	return out, nil
}

// TiposServicioActivos lista los tipos de servicio activos.
func (uc *CatalogoUseCase) TiposServicioActivos(ctx context.Context) ([]*dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListTiposServicioActivos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(list))
	for _, t := range list {
		out = append(out, &dto.CatalogoItemResponse{ID: t.ID, Nombre: t.Nombre})
	}
	return out, nil
}

// FasesActivas lista las fases de implementación activas.
func (uc *CatalogoUseCase) FasesActivas(ctx context.Context) ([]*dto.CatalogoItemResponse, error) {
	list, err := uc.repo.ListFasesActivas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(list))
	for _, f := range list {
		out = append(out, &dto.CatalogoItemResponse{ID: f.ID, Nombre: f.Nombre})
	}
	return out, nil
}

// ClienteUseCase lecturas de clientes (este sistema no los muta).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// ListarActivos lista los clientes activos.
func (uc *ClienteUseCase) ListarActivos(ctx context.Context) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.ClienteResponse{
			ID:       c.ID,
			RTN:      c.RTN,
			Nombre:   c.Nombre,
			Email:    c.Email,
			Telefono: c.Telefono,
		})
	}
	return out, nil
}

// ObtenerPorRTN busca un cliente por su RTN (14 caracteres).
func (uc *ClienteUseCase) ObtenerPorRTN(ctx context.Context, rtn string) (*dto.ClienteResponse, error) {
	if len(rtn) != 14 {
		return nil, domain.NuevoErrorValidacion("rtn", "debe tener 14 caracteres")
	}
	c, err := uc.repo.GetByRTN(ctx, rtn)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ClienteResponse{
		ID:       c.ID,
		RTN:      c.RTN,
		Nombre:   c.Nombre,
		Email:    c.Email,
		Telefono: c.Telefono,
	}, nil
}
