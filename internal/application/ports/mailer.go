package ports

// Mailer colaborador externo de notificaciones. La entrega es best-effort: un
// fallo de envío nunca invalida la operación que lo originó.
type Mailer interface {
	EnviarEnlaceFirma(destinatario, url string) error
}
