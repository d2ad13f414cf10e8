package entity

import "time"

// Modos de captura de una firma.
const (
	FirmaPresencial = "presencial"
	FirmaRemota     = "remota"
)

// Quién firma.
const (
	FirmanteCliente = "cliente"
	FirmanteTecnico = "tecnico"
)

// Firma comprobante de servicio. Las presenciales nacen firmadas (Usada=true);
// las remotas nacen vacías y se completan una sola vez vía el enlace con token.
//
// Invariante: Usada == true si y solo si Imagen no está vacía. Una firma usada
// es terminal: su imagen nunca se sobrescribe.
type Firma struct {
	ID        int64
	Token     string // aleatorio, único; solo para la variante remota
	Modo      string // presencial, remota
	Firmante  string // cliente, tecnico
	Imagen    string // raster en base64; vacía hasta firmar
	URL       string // enlace compartible de firma remota
	Usada     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Firmada indica si la firma constituye comprobante válido.
func (f *Firma) Firmada() bool {
	return f != nil && f.Usada && f.Imagen != ""
}
