package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrEmailYaRegistrado   = errors.New("el email ya está registrado")
	ErrNoAutenticado       = errors.New("no autenticado")
	ErrFirmaYaUsada        = errors.New("la firma ya fue utilizada")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrDependencia         = errors.New("error de dependencia externa")
)

// ErrorValidacion entrada malformada o fuera de rango, con detalle campo → violación.
type ErrorValidacion struct {
	Campos map[string]string
}

// NuevoErrorValidacion construye un error de validación con un solo campo violado.
func NuevoErrorValidacion(campo, detalle string) *ErrorValidacion {
	return &ErrorValidacion{Campos: map[string]string{campo: detalle}}
}

func (e *ErrorValidacion) Error() string {
	if len(e.Campos) == 0 {
		return "entrada inválida"
	}
	claves := make([]string, 0, len(e.Campos))
	for k := range e.Campos {
		claves = append(claves, k)
	}
	sort.Strings(claves)
	partes := make([]string, 0, len(claves))
	for _, k := range claves {
		partes = append(partes, fmt.Sprintf("%s: %s", k, e.Campos[k]))
	}
	return "entrada inválida (" + strings.Join(partes, "; ") + ")"
}
