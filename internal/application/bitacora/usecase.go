package bitacora

import (
	"context"
	"time"

	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

// BitacoraUseCase ciclo de vida de las bitácoras: creación ligada a una firma,
// edición de encuesta y calificación.
type BitacoraUseCase struct {
	tx   TxRunner
	repo repository.BitacoraRepository
}

// NewBitacoraUseCase construye el caso de uso.
func NewBitacoraUseCase(tx TxRunner, repo repository.BitacoraRepository) *BitacoraUseCase {
	return &BitacoraUseCase{tx: tx, repo: repo}
}

// Crear valida las referencias y persiste la bitácora dentro de una transacción.
// La firma referenciada debe existir pero puede seguir pendiente de finalizar
// (el comprobante remoto se confirma después, vía verificar).
func (uc *BitacoraUseCase) Crear(ctx context.Context, in dto.CrearBitacoraRequest) (*dto.BitacoraResponse, error) {
	if err := validarReferencias(in); err != nil {
		return nil, err
	}
	if in.TipoHoras != entity.HoraPaquete && in.TipoHoras != entity.HoraIndividual {
		return nil, domain.NuevoErrorValidacion("tipo_horas", "tipo de hora inválido")
	}
	if in.CantHoras.IsNegative() {
		return nil, domain.NuevoErrorValidacion("cant_horas", "debe ser mayor o igual a cero")
	}

	now := time.Now()
	b := &entity.Bitacora{
		ClienteID:            in.ClienteID,
		TecnicoID:            in.TecnicoID,
		EquipoID:             in.EquipoID,
		SistemaID:            in.SistemaID,
		TipoServicioID:       in.TipoServicioID,
		FirmaID:              in.FirmaID,
		FaseImplementacionID: in.FaseImplementacionID,
		Descripcion:          in.Descripcion,
		Observaciones:        in.Observaciones,
		CantHoras:            in.CantHoras,
		TipoHoras:            in.TipoHoras,
		Calificacion:         entity.CalificacionMin,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err := uc.tx.Run(ctx, func(
		bitacoras repository.BitacoraRepository,
		firmas repository.FirmaRepository,
		clientes repository.ClienteRepository,
		usuarios repository.UsuarioRepository,
		catalogos repository.CatalogoRepository,
	) error {
		if f, err := firmas.GetByID(ctx, in.FirmaID); err != nil {
			return err
		} else if f == nil {
			return domain.ErrNotFound
		}
		if c, err := clientes.GetByID(ctx, in.ClienteID); err != nil {
			return err
		} else if c == nil {
			return domain.ErrNotFound
		}
		if u, err := usuarios.GetByID(ctx, in.TecnicoID); err != nil {
			return err
		} else if u == nil {
			return domain.ErrNotFound
		}
		if ok, err := catalogos.ExisteEquipo(ctx, in.EquipoID); err != nil || !ok {
			return faltante(err)
		}
		if ok, err := catalogos.ExisteSistema(ctx, in.SistemaID); err != nil || !ok {
			return faltante(err)
		}
		if ok, err := catalogos.ExisteTipoServicio(ctx, in.TipoServicioID); err != nil || !ok {
			return faltante(err)
		}
		if ok, err := catalogos.ExisteFase(ctx, in.FaseImplementacionID); err != nil || !ok {
			return faltante(err)
		}
		return bitacoras.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return toBitacoraResponse(b), nil
}

// faltante traduce "no existe" a ErrNotFound preservando errores del store.
func faltante(err error) error {
	if err != nil {
		return err
	}
	return domain.ErrNotFound
}

// Editar aplica la edición de encuesta: solo encuesta, observaciones y fase.
func (uc *BitacoraUseCase) Editar(ctx context.Context, in dto.EditarBitacoraRequest) (*dto.BitacoraResponse, error) {
	if in.ID <= 0 {
		return nil, domain.NuevoErrorValidacion("id", "debe ser un entero positivo")
	}
	if in.FaseImplementacionID <= 0 {
		return nil, domain.NuevoErrorValidacion("fase_implementacion_id", "debe ser un entero positivo")
	}
	ok, err := uc.repo.ActualizarEncuesta(ctx, in.ID, in.Encuesta, in.Observaciones, in.FaseImplementacionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	b, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return toBitacoraResponse(b), nil
}

// ActualizarCalificacion sobrescribe la calificación (0–10 inclusive). Repetir
// la llamada con el mismo valor no cambia el estado almacenado.
func (uc *BitacoraUseCase) ActualizarCalificacion(ctx context.Context, id int64, calificacion int) (*dto.BitacoraResponse, error) {
	if id <= 0 {
		return nil, domain.NuevoErrorValidacion("id", "debe ser un entero positivo")
	}
	if calificacion < entity.CalificacionMin || calificacion > entity.CalificacionMax {
		return nil, domain.NuevoErrorValidacion("calificacion", "debe estar entre 0 y 10")
	}
	ok, err := uc.repo.ActualizarCalificacion(ctx, id, calificacion)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBitacoraResponse(b), nil
}

// ListarPorCliente bitácoras del cliente; lista vacía si no tiene.
func (uc *BitacoraUseCase) ListarPorCliente(ctx context.Context, clienteID int64) ([]*dto.BitacoraResponse, error) {
	if clienteID <= 0 {
		return nil, domain.NuevoErrorValidacion("id", "debe ser un entero positivo")
	}
	list, err := uc.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return toBitacoraResponses(list), nil
}

// ListarPorTecnico bitácoras levantadas por el técnico; lista vacía si no tiene.
func (uc *BitacoraUseCase) ListarPorTecnico(ctx context.Context, tecnicoID int64) ([]*dto.BitacoraResponse, error) {
	if tecnicoID <= 0 {
		return nil, domain.NuevoErrorValidacion("id", "debe ser un entero positivo")
	}
	list, err := uc.repo.ListByTecnico(ctx, tecnicoID)
	if err != nil {
		return nil, err
	}
	return toBitacoraResponses(list), nil
}

// ObtenerPorFirma búsqueda inversa: de la firma a su bitácora (la usa la página
// de firma remota para ubicar contexto).
func (uc *BitacoraUseCase) ObtenerPorFirma(ctx context.Context, firmaID int64) (*dto.BitacoraResponse, error) {
	if firmaID <= 0 {
		return nil, domain.NuevoErrorValidacion("id", "debe ser un entero positivo")
	}
	b, err := uc.repo.GetByFirma(ctx, firmaID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBitacoraResponse(b), nil
}

func validarReferencias(in dto.CrearBitacoraRequest) error {
	campos := map[string]int64{
		"cliente_id":             in.ClienteID,
		"tecnico_id":             in.TecnicoID,
		"equipo_id":              in.EquipoID,
		"sistema_id":             in.SistemaID,
		"tipo_servicio_id":       in.TipoServicioID,
		"firma_id":               in.FirmaID,
		"fase_implementacion_id": in.FaseImplementacionID,
	}
	violaciones := map[string]string{}
	for campo, valor := range campos {
		if valor <= 0 {
			violaciones[campo] = "debe ser un entero positivo"
		}
	}
	if len(violaciones) > 0 {
		return &domain.ErrorValidacion{Campos: violaciones}
	}
	return nil
}

func toBitacoraResponse(b *entity.Bitacora) *dto.BitacoraResponse {
	if b == nil {
		return nil
	}
	return &dto.BitacoraResponse{
		ID:                   b.ID,
		ClienteID:            b.ClienteID,
		TecnicoID:            b.TecnicoID,
		EquipoID:             b.EquipoID,
		SistemaID:            b.SistemaID,
		TipoServicioID:       b.TipoServicioID,
		FirmaID:              b.FirmaID,
		FaseImplementacionID: b.FaseImplementacionID,
		Descripcion:          b.Descripcion,
		Observaciones:        b.Observaciones,
		Encuesta:             b.Encuesta,
		CantHoras:            b.CantHoras,
		TipoHoras:            b.TipoHoras,
		Calificacion:         b.Calificacion,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

func toBitacoraResponses(list []*entity.Bitacora) []*dto.BitacoraResponse {
	out := make([]*dto.BitacoraResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBitacoraResponse(b))
	}
	return out
}
