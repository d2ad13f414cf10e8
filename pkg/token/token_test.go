package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecniservice/bitacoras-api/pkg/token"
)

const (
	testSecret = "secreto-de-prueba-para-unit-tests"
	testEmail  = "tecnico@tecniservice.hn"
	testIssuer = "bitacoras-api-test"
	testExpMin = 60
)

func TestEmitirYValidar_RoundTrip(t *testing.T) {
	tok, err := token.Emitir(testSecret, testEmail, "tecnico", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	payload, err := token.Validar(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testEmail, payload.Email, "el subject de la sesión es el email")
	assert.Equal(t, "tecnico", payload.Rol)
}

func TestValidar_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto: nace vencido.
	tok, err := token.Emitir(testSecret, testEmail, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = token.Validar(testSecret, tok)
	assert.Error(t, err, "un token expirado nunca produce sesión")
}

func TestValidar_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Emitir(testSecret, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = token.Validar("otro-secreto-completamente-distinto", tok)
	assert.Error(t, err, "la firma debe validarse con el secreto del proceso")
}

func TestValidar_TokenManipulado_RetornaError(t *testing.T) {
	tok, err := token.Emitir(testSecret, testEmail, "tecnico", testIssuer, testExpMin)
	require.NoError(t, err)

	// Alterar el payload invalida la firma HMAC.
	partes := strings.Split(tok, ".")
	require.Len(t, partes, 3)
	partes[1] = partes[1][:len(partes[1])-2] + "xx"

	_, err = token.Validar(testSecret, strings.Join(partes, "."))
	assert.Error(t, err)
}

func TestValidar_TokenMalformado_RetornaError(t *testing.T) {
	_, err := token.Validar(testSecret, "no.es.un-jwt")
	assert.Error(t, err)
}

func TestEmitir_SecretVacio_RetornaError(t *testing.T) {
	_, err := token.Emitir("", testEmail, "admin", testIssuer, testExpMin)
	assert.Error(t, err)
}

func TestValidar_SecretVacio_RetornaError(t *testing.T) {
	tok, err := token.Emitir(testSecret, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = token.Validar("", tok)
	assert.Error(t, err)
}

func TestValidar_SinSubject_RetornaError(t *testing.T) {
	tok, err := token.Emitir(testSecret, "", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = token.Validar(testSecret, tok)
	assert.Error(t, err, "un token sin email no identifica a nadie")
}
