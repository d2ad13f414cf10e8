package dto

// Respuesta envoltura uniforme de éxito: código HTTP, mensaje legible y resultado
// (arreglo para colecciones).
type Respuesta struct {
	Codigo    int         `json:"codigo"`
	Mensaje   string      `json:"mensaje"`
	Resultado interface{} `json:"resultado,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Campos trae el detalle campo → violación
// solo en errores de validación.
type ErrorResponse struct {
	Codigo  string            `json:"codigo"`
	Mensaje string            `json:"mensaje"`
	Campos  map[string]string `json:"campos,omitempty"`
}
