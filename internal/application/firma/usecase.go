package firma

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/application/ports"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
	"github.com/tecniservice/bitacoras-api/pkg/logger"
)

// Reintentos ante colisión del token remoto (constraint único). Con tokens
// UUID v4 una colisión real es despreciable; el límite solo evita un loop
// infinito ante un store que devuelva duplicado por otra causa.
const maxReintentosToken = 3

// FirmaUseCase ciclo de vida de las firmas: creación presencial/remota/por
// técnico, finalización de una sola vez y verificación.
type FirmaUseCase struct {
	repo    repository.FirmaRepository
	mailer  ports.Mailer
	log     *logger.Logger
	baseURL string
}

// NewFirmaUseCase construye el caso de uso. mailer puede ser nil (sin envío).
func NewFirmaUseCase(repo repository.FirmaRepository, mailer ports.Mailer, log *logger.Logger, baseURL string) *FirmaUseCase {
	return &FirmaUseCase{repo: repo, mailer: mailer, log: log, baseURL: baseURL}
}

// CrearPresencial registra una firma capturada en sitio por el cliente.
// Nace consumida: la imagen se captura en el mismo acto.
func (uc *FirmaUseCase) CrearPresencial(ctx context.Context, in dto.CrearFirmaPresencialRequest) (*dto.FirmaResponse, error) {
	return uc.crearFirmada(ctx, in.Imagen, entity.FirmanteCliente)
}

// CrearParaTecnico igual que la presencial pero firmada por el técnico.
func (uc *FirmaUseCase) CrearParaTecnico(ctx context.Context, in dto.CrearFirmaPresencialRequest) (*dto.FirmaResponse, error) {
	return uc.crearFirmada(ctx, in.Imagen, entity.FirmanteTecnico)
}

func (uc *FirmaUseCase) crearFirmada(ctx context.Context, imagen, firmante string) (*dto.FirmaResponse, error) {
	if imagen == "" {
		return nil, domain.NuevoErrorValidacion("imagen", "es requerida")
	}
	now := time.Now()
	f := &entity.Firma{
		Modo:      entity.FirmaPresencial,
		Firmante:  firmante,
		Imagen:    imagen,
		Usada:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFirmaResponse(f), nil
}

// CrearRemota genera un token aleatorio único, arma el enlace compartible y
// persiste la firma vacía (usada=false). Si el token colisiona con uno
// existente se regenera, con reintentos acotados.
func (uc *FirmaUseCase) CrearRemota(ctx context.Context, in dto.CrearFirmaRemotaRequest) (*dto.FirmaResponse, error) {
	for intento := 0; intento < maxReintentosToken; intento++ {
		tok := uuid.NewString()
		now := time.Now()
		f := &entity.Firma{
			Token:     tok,
			Modo:      entity.FirmaRemota,
			Firmante:  entity.FirmanteCliente,
			URL:       fmt.Sprintf("%s/firmas/remota/%s", uc.baseURL, tok),
			Usada:     false,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := uc.repo.Create(ctx, f)
		if err == nil {
			uc.enviarEnlace(in.Destinatario, f.URL)
			return toFirmaResponse(f), nil
		}
		if !errors.Is(err, domain.ErrDuplicado) {
			return nil, err
		}
		uc.log.Warn().Int("intento", intento+1).Msg("colisión de token de firma remota, regenerando")
	}
	return nil, fmt.Errorf("%w: reintentos de generación de token agotados", domain.ErrDependencia)
}

// enviarEnlace entrega el enlace por correo si hay destinatario y mailer.
// El fallo de envío se registra y no invalida la creación.
func (uc *FirmaUseCase) enviarEnlace(destinatario, url string) {
	if destinatario == "" || uc.mailer == nil {
		return
	}
	if err := uc.mailer.EnviarEnlaceFirma(destinatario, url); err != nil {
		uc.log.Error().Err(err).Str("destinatario", destinatario).Msg("envío del enlace de firma remota")
	}
}

// Finalizar completa una firma remota con la imagen capturada. Es a-lo-sumo-una-vez:
// la mutación es una sola actualización condicionada a usada=false en el store,
// de modo que dos finalizaciones concurrentes nunca sobrescriben un comprobante.
func (uc *FirmaUseCase) Finalizar(ctx context.Context, id int64, in dto.FinalizarFirmaRequest) (*dto.FirmaResponse, error) {
	if in.Imagen == "" {
		return nil, domain.NuevoErrorValidacion("imagen", "es requerida")
	}
	ok, err := uc.repo.Finalizar(ctx, id, in.Imagen)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Ninguna fila afectada: o no existe, o ya estaba consumida.
		f, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrFirmaYaUsada
	}
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFirmaResponse(f), nil
}

// Verificar indica si la firma constituye comprobante: existe, tiene imagen y
// está usada. Cualquier otra condición (incluido un error del store) responde
// false; es un endpoint de sondeo sin efectos secundarios.
func (uc *FirmaUseCase) Verificar(ctx context.Context, id int64) bool {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("firma_id", id).Msg("verificar firma: error del store")
		return false
	}
	return f.Firmada()
}

// ObtenerPorID busca una firma por su ID.
func (uc *FirmaUseCase) ObtenerPorID(ctx context.Context, id int64) (*dto.FirmaResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toFirmaResponse(f), nil
}

// ObtenerPorToken localiza la firma desde el token del enlace remoto.
func (uc *FirmaUseCase) ObtenerPorToken(ctx context.Context, tok string) (*dto.FirmaResponse, error) {
	if tok == "" {
		return nil, domain.NuevoErrorValidacion("token", "es requerido")
	}
	f, err := uc.repo.GetByToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toFirmaResponse(f), nil
}

func toFirmaResponse(f *entity.Firma) *dto.FirmaResponse {
	if f == nil {
		return nil
	}
	return &dto.FirmaResponse{
		ID:        f.ID,
		Token:     f.Token,
		Modo:      f.Modo,
		Firmante:  f.Firmante,
		Imagen:    f.Imagen,
		URL:       f.URL,
		Usada:     f.Usada,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
