package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del proceso.
type Config struct {
	Env     string // development -> consola legible; cualquier otro valor -> JSON
	Level   string // trace, debug, info, warn, error (default info)
	Service string // nombre del servicio; se anexa a cada línea si no está vacío
}

// Logger logger estructurado del proceso. Se inyecta en los casos de uso que
// necesitan registrar eventos (los handlers usan el global de zerolog).
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger y redirige el global de zerolog al mismo destino,
// de modo que el código que loguea vía rs/zerolog/log comparta formato.
func New(cfg Config) *Logger {
	var salida io.Writer = os.Stdout
	if cfg.Env == "development" {
		salida = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	nivel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}

	ctx := zerolog.New(salida).Level(nivel).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
