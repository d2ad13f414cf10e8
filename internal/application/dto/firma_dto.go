package dto

import "time"

// CrearFirmaPresencialRequest firma capturada en sitio (por el cliente o el técnico).
type CrearFirmaPresencialRequest struct {
	Imagen string `json:"imagen"` // raster en base64, obligatoria
}

// CrearFirmaRemotaRequest opcionalmente indica a quién enviar el enlace.
type CrearFirmaRemotaRequest struct {
	Destinatario string `json:"destinatario"` // email; vacío = no se envía correo
}

// FinalizarFirmaRequest imagen con la que se completa una firma remota.
type FinalizarFirmaRequest struct {
	Imagen string `json:"imagen"`
}

// FirmaResponse representación pública de una firma.
type FirmaResponse struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token,omitempty"`
	Modo      string    `json:"modo"`
	Firmante  string    `json:"firmante"`
	Imagen    string    `json:"imagen,omitempty"`
	URL       string    `json:"url,omitempty"`
	Usada     bool      `json:"usada"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VerificarFirmaResponse resultado del sondeo de estado.
type VerificarFirmaResponse struct {
	Firmada bool `json:"firmada"`
}
