package models

// JobApplication is a sanitized job application. The CV bytes are held only
// long enough to attach to the outbound email.
type JobApplication struct {
	Nombre     string
	Email      string
	Telefono   string
	Motivacion string

	CVFilename string
	CVSize     int64
	CV         []byte
}
