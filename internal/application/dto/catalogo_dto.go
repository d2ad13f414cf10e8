package dto

// CatalogoItemResponse fila genérica de catálogo (equipos, sistemas, tipos de
// servicio, fases de implementación).
type CatalogoItemResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ClienteResponse representación pública de un cliente.
type ClienteResponse struct {
	ID       int64  `json:"id"`
	RTN      string `json:"rtn"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}
