package dto

// JobApplicationDTO is the multipart form of POST /api/postulacion. The CV
// file travels separately as the "cv" part.
type JobApplicationDTO struct {
	Nombre     string `form:"nombre"`
	Email      string `form:"email"`
	Telefono   string `form:"telefono"`
	Motivacion string `form:"motivacion"`
}
