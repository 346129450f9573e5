package models

// QuoteSubmission is a fully sanitized quote request, ready for rendering.
// It lives for the duration of one request and is never persisted.
type QuoteSubmission struct {
	Producto      string
	ProductName   string
	Cantidad      string
	TiposCarton   []string
	FormatosRollo []string
	Detalle       string
	Empresa       string
	Email         string
	Telefono      string

	// QuoteNumber is assigned after validation succeeds.
	QuoteNumber int64
}
