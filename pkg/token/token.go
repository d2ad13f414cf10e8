package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
// El subject es el email del usuario autenticado; Rol permite decisiones de
// autorización sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Rol   string `json:"rol"` // "admin" | "tecnico"
}

// Payload datos de sesión derivados de un token válido. No se persiste.
type Payload struct {
	Email string
	Rol   string
}

// Emitir genera un token de sesión HS256 firmado con el secreto del proceso.
func Emitir(secret, email, rol, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
		Rol:   rol,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Validar verifica firma y expiración del token y devuelve el payload de sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta;
// nunca degrada a una identidad anónima.
func Validar(secret, tokenString string) (*Payload, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token sin subject")
	}
	return &Payload{Email: claims.Email, Rol: claims.Rol}, nil
}
