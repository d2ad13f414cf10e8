package firma_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	appfirma "github.com/tecniservice/bitacoras-api/internal/application/firma"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de firmas. Reproduce el contrato del store
// real: ErrDuplicado ante token repetido, (nil, nil) ante ID inexistente y
// Finalizar como actualización condicionada a usada=false.
// ──────────────────────────────────────────────────────────────────────────────

type firmaRepoMem struct {
	mu     sync.Mutex
	seq    int64
	firmas map[int64]entity.Firma
	tokens map[string]int64

	// duplicadosRestantes fuerza ErrDuplicado en los próximos Create.
	duplicadosRestantes int
	errGet              error
}

func nuevoFirmaRepoMem() *firmaRepoMem {
	return &firmaRepoMem{
		firmas: map[int64]entity.Firma{},
		tokens: map[string]int64{},
	}
}

func (r *firmaRepoMem) Create(_ context.Context, f *entity.Firma) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.duplicadosRestantes > 0 {
		r.duplicadosRestantes--
		return domain.ErrDuplicado
	}
	if f.Token != "" {
		if _, existe := r.tokens[f.Token]; existe {
			return domain.ErrDuplicado
		}
	}
	r.seq++
	f.ID = r.seq
	r.firmas[f.ID] = *f
	if f.Token != "" {
		r.tokens[f.Token] = f.ID
	}
	return nil
}

func (r *firmaRepoMem) GetByID(_ context.Context, id int64) (*entity.Firma, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errGet != nil {
		return nil, r.errGet
	}
	f, ok := r.firmas[id]
	if !ok {
		return nil, nil
	}
	copia := f
	return &copia, nil
}

func (r *firmaRepoMem) GetByToken(_ context.Context, token string) (*entity.Firma, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	f := r.firmas[id]
	return &f, nil
}

func (r *firmaRepoMem) Finalizar(_ context.Context, id int64, imagen string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.firmas[id]
	if !ok || f.Usada {
		return false, nil
	}
	f.Imagen = imagen
	f.Usada = true
	r.firmas[id] = f
	return true, nil
}

// mailerFake registra los envíos para verificarlos en los tests.
type mailerFake struct {
	destinatarios []string
	urls          []string
	err           error
}

func (m *mailerFake) EnviarEnlaceFirma(destinatario, url string) error {
	m.destinatarios = append(m.destinatarios, destinatario)
	m.urls = append(m.urls, url)
	return m.err
}

const testBaseURL = "https://bitacoras.test"

func nuevoUC(repo *firmaRepoMem, mailer *mailerFake) *appfirma.FirmaUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	if mailer == nil {
		return appfirma.NewFirmaUseCase(repo, nil, log, testBaseURL)
	}
	return appfirma.NewFirmaUseCase(repo, mailer, log, testBaseURL)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación presencial: nace consumida (la imagen se captura en el mismo acto).
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearPresencial_NaceUsadaConImagen(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	out, err := uc.CrearPresencial(context.Background(),
		dto.CrearFirmaPresencialRequest{Imagen: "data:image/png;base64,AAA"})

	require.NoError(t, err)
	assert.True(t, out.Usada, "la firma presencial debe nacer usada")
	assert.NotEmpty(t, out.Imagen)
	assert.Equal(t, entity.FirmaPresencial, out.Modo)
	assert.Equal(t, entity.FirmanteCliente, out.Firmante)
	assert.Empty(t, out.Token, "la firma presencial no lleva token de enlace")
}

func TestCrearPresencial_SinImagen_RetornaValidacion(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	_, err := uc.CrearPresencial(context.Background(), dto.CrearFirmaPresencialRequest{})

	var ev *domain.ErrorValidacion
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Campos, "imagen")
}

func TestCrearParaTecnico_FirmanteTecnico(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	out, err := uc.CrearParaTecnico(context.Background(),
		dto.CrearFirmaPresencialRequest{Imagen: "data:image/png;base64,BBB"})

	require.NoError(t, err)
	assert.Equal(t, entity.FirmanteTecnico, out.Firmante)
	assert.True(t, out.Usada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación remota: token único, enlace compartible, nace pendiente.
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearRemota_NacePendienteConEnlace(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	out, err := uc.CrearRemota(context.Background(), dto.CrearFirmaRemotaRequest{})

	require.NoError(t, err)
	assert.False(t, out.Usada, "la firma remota debe nacer pendiente")
	assert.Empty(t, out.Imagen)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.FirmaRemota, out.Modo)
	assert.Contains(t, out.URL, testBaseURL)
	assert.Contains(t, out.URL, out.Token, "el enlace debe incluir el token")
}

func TestCrearRemota_TokensUnicos(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)
	ctx := context.Background()

	const n = 10_000
	vistos := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		out, err := uc.CrearRemota(ctx, dto.CrearFirmaRemotaRequest{})
		require.NoError(t, err)
		_, repetido := vistos[out.Token]
		require.False(t, repetido, "token repetido en la iteración %d: %s", i, out.Token)
		vistos[out.Token] = struct{}{}
	}
}

func TestCrearRemota_ColisionDeToken_Regenera(t *testing.T) {
	repo := nuevoFirmaRepoMem()
	repo.duplicadosRestantes = 2 // dos colisiones, el tercer intento entra
	uc := nuevoUC(repo, nil)

	out, err := uc.CrearRemota(context.Background(), dto.CrearFirmaRemotaRequest{})

	require.NoError(t, err, "ante colisión el token debe regenerarse")
	assert.NotEmpty(t, out.Token)
}

func TestCrearRemota_ColisionesAgotadas_RetornaDependencia(t *testing.T) {
	repo := nuevoFirmaRepoMem()
	repo.duplicadosRestantes = 3 // agota todos los reintentos
	uc := nuevoUC(repo, nil)

	_, err := uc.CrearRemota(context.Background(), dto.CrearFirmaRemotaRequest{})
	assert.ErrorIs(t, err, domain.ErrDependencia)
}

func TestCrearRemota_ConDestinatario_EnviaEnlace(t *testing.T) {
	mailer := &mailerFake{}
	uc := nuevoUC(nuevoFirmaRepoMem(), mailer)

	out, err := uc.CrearRemota(context.Background(),
		dto.CrearFirmaRemotaRequest{Destinatario: "cliente@acme.hn"})

	require.NoError(t, err)
	require.Len(t, mailer.destinatarios, 1)
	assert.Equal(t, "cliente@acme.hn", mailer.destinatarios[0])
	assert.Equal(t, out.URL, mailer.urls[0])
}

func TestCrearRemota_FalloDeCorreo_NoInvalidaLaCreacion(t *testing.T) {
	mailer := &mailerFake{err: errors.New("smtp caído")}
	uc := nuevoUC(nuevoFirmaRepoMem(), mailer)

	out, err := uc.CrearRemota(context.Background(),
		dto.CrearFirmaRemotaRequest{Destinatario: "cliente@acme.hn"})

	require.NoError(t, err, "el fallo del correo es best-effort, la firma queda creada")
	assert.NotEmpty(t, out.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalizar: a lo sumo una vez. Una firma usada es terminal.
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizar_CompletaLaFirmaUnaVez(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)
	ctx := context.Background()

	creada, err := uc.CrearRemota(ctx, dto.CrearFirmaRemotaRequest{})
	require.NoError(t, err)

	out, err := uc.Finalizar(ctx, creada.ID, dto.FinalizarFirmaRequest{Imagen: "firma-cliente"})
	require.NoError(t, err)
	assert.True(t, out.Usada)
	assert.Equal(t, "firma-cliente", out.Imagen)
}

func TestFinalizar_SegundaVez_RetornaYaUsadaSinMutar(t *testing.T) {
	repo := nuevoFirmaRepoMem()
	uc := nuevoUC(repo, nil)
	ctx := context.Background()

	creada, err := uc.CrearRemota(ctx, dto.CrearFirmaRemotaRequest{})
	require.NoError(t, err)
	_, err = uc.Finalizar(ctx, creada.ID, dto.FinalizarFirmaRequest{Imagen: "original"})
	require.NoError(t, err)

	_, err = uc.Finalizar(ctx, creada.ID, dto.FinalizarFirmaRequest{Imagen: "intruso"})
	assert.ErrorIs(t, err, domain.ErrFirmaYaUsada)

	// El comprobante original no se sobrescribe.
	f, err := uc.ObtenerPorID(ctx, creada.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", f.Imagen)
	assert.True(t, f.Usada)
}

func TestFinalizar_FirmaPresencial_RetornaYaUsada(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)
	ctx := context.Background()

	creada, err := uc.CrearPresencial(ctx, dto.CrearFirmaPresencialRequest{Imagen: "en-sitio"})
	require.NoError(t, err)

	_, err = uc.Finalizar(ctx, creada.ID, dto.FinalizarFirmaRequest{Imagen: "otra"})
	assert.ErrorIs(t, err, domain.ErrFirmaYaUsada,
		"una presencial nace consumida: finalizar debe rechazarse")
}

func TestFinalizar_FirmaInexistente_RetornaNotFound(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	_, err := uc.Finalizar(context.Background(), 9999, dto.FinalizarFirmaRequest{Imagen: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinalizar_SinImagen_RetornaValidacion(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	_, err := uc.Finalizar(context.Background(), 1, dto.FinalizarFirmaRequest{})

	var ev *domain.ErrorValidacion
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Campos, "imagen")
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificar: sondeo sin efectos secundarios; nunca retorna error.
// ──────────────────────────────────────────────────────────────────────────────

func TestVerificar_PendienteFalse_FinalizadaTrue(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)
	ctx := context.Background()

	creada, err := uc.CrearRemota(ctx, dto.CrearFirmaRemotaRequest{})
	require.NoError(t, err)
	assert.False(t, uc.Verificar(ctx, creada.ID), "pendiente no constituye comprobante")

	_, err = uc.Finalizar(ctx, creada.ID, dto.FinalizarFirmaRequest{Imagen: "lista"})
	require.NoError(t, err)
	assert.True(t, uc.Verificar(ctx, creada.ID))
}

func TestVerificar_FirmaInexistente_RetornaFalse(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)
	assert.False(t, uc.Verificar(context.Background(), 424242))
}

func TestVerificar_ErrorDelStore_RetornaFalse(t *testing.T) {
	repo := nuevoFirmaRepoMem()
	repo.errGet = errors.New("conexión caída")
	uc := nuevoUC(repo, nil)

	assert.False(t, uc.Verificar(context.Background(), 1),
		"ante error del store el sondeo responde false, nunca truena")
}

func TestVerificar_RepetidoNoMutaElEstado(t *testing.T) {
	repo := nuevoFirmaRepoMem()
	uc := nuevoUC(repo, nil)
	ctx := context.Background()

	creada, err := uc.CrearRemota(ctx, dto.CrearFirmaRemotaRequest{})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.False(t, uc.Verificar(ctx, creada.ID))
	}
	f, err := uc.ObtenerPorID(ctx, creada.ID)
	require.NoError(t, err)
	assert.False(t, f.Usada, "verificar N veces no debe consumir la firma")
	assert.Empty(t, f.Imagen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsquedas
// ──────────────────────────────────────────────────────────────────────────────

func TestObtenerPorToken_LocalizaLaFirma(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)
	ctx := context.Background()

	creada, err := uc.CrearRemota(ctx, dto.CrearFirmaRemotaRequest{})
	require.NoError(t, err)

	out, err := uc.ObtenerPorToken(ctx, creada.Token)
	require.NoError(t, err)
	assert.Equal(t, creada.ID, out.ID)
}

func TestObtenerPorToken_Desconocido_RetornaNotFound(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	_, err := uc.ObtenerPorToken(context.Background(), "token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObtenerPorID_Inexistente_RetornaNotFound(t *testing.T) {
	uc := nuevoUC(nuevoFirmaRepoMem(), nil)

	_, err := uc.ObtenerPorID(context.Background(), 77)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
