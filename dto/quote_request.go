package dto

// QuoteRequestDTO is the JSON body of POST /api/contact. Fields are bound
// as-is and go through sanitization and validation before any use; the
// required/format rules live in utils, not in binding tags, because the
// client expects a field-keyed Spanish error map.
type QuoteRequestDTO struct {
	Producto      string   `json:"producto"`
	Cantidad      string   `json:"cantidad"`
	TiposCarton   []string `json:"tiposCarton"`
	FormatosRollo []string `json:"formatosRollo"`
	Detalle       string   `json:"detalle"`
	Empresa       string   `json:"empresa"`
	Email         string   `json:"email"`
	Telefono      string   `json:"telefono"`
}
