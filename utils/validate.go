package utils

import (
	"errors"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
)

// emailRegex accepts local@domain.tld: any non-whitespace local part and a
// domain containing at least one dot.
var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigit   = regexp.MustCompile(`\D`)
)

const minPhoneDigits = 8

// ValidateQuote applies the quote form's field rules to already-sanitized
// values. An empty map means the submission is valid.
func ValidateQuote(producto, empresa, email, telefono string) map[string]string {
	errs := map[string]string{}

	if producto == "" {
		errs["producto"] = "Debes seleccionar un producto"
	}
	if empresa == "" || len([]rune(empresa)) < 2 {
		errs["empresa"] = "El nombre de empresa es requerido"
	}
	if email == "" || !emailRegex.MatchString(email) {
		errs["email"] = "Email invalido"
	}
	if len(nonDigit.ReplaceAllString(telefono, "")) < minPhoneDigits {
		errs["telefono"] = "Telefono debe tener al menos 8 digitos"
	}

	return errs
}

// ValidateApplication applies the job-application field rules. The CV's
// type and size limits are checked separately by CVValidator once the
// field map comes back empty.
func ValidateApplication(nombre, email, telefono, motivacion string, cv *multipart.FileHeader) map[string]string {
	errs := map[string]string{}

	if nombre == "" || len([]rune(nombre)) < 2 {
		errs["nombre"] = "El nombre es requerido"
	}
	if email == "" || !emailRegex.MatchString(email) {
		errs["email"] = "Email inválido"
	}
	if len(nonDigit.ReplaceAllString(telefono, "")) < minPhoneDigits {
		errs["telefono"] = "Teléfono debe tener al menos 8 dígitos"
	}
	if len([]rune(motivacion)) < 20 {
		errs["motivacion"] = "La motivación debe tener al menos 20 caracteres"
	}
	if cv == nil || cv.Size == 0 {
		errs["cv"] = "Debes adjuntar tu CV"
	}

	return errs
}

// CV attachment constraints.
const (
	CVContentType  = "application/pdf"
	MaxCVSizeBytes = int64(2) << 20 // 2 MiB

	MsgPDFOnly    = "Solo se permiten archivos PDF"
	MsgCVTooLarge = "El archivo no puede superar los 2MB"
)

// CVValidator enforces the CV upload policy: PDF only, at most 2 MiB.
type CVValidator struct {
	maxSize int64
}

func NewCVValidator() *CVValidator {
	return &CVValidator{maxSize: MaxCVSizeBytes}
}

// Validate checks the declared content type, the sniffed content type, and
// the size. The returned error's message is user-facing; a file whose
// content cannot be read is rejected as not-a-PDF since it cannot be
// verified.
func (v *CVValidator) Validate(fh *multipart.FileHeader) error {
	ct := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct != CVContentType {
		return errors.New(MsgPDFOnly)
	}

	file, err := fh.Open()
	if err != nil {
		return errors.New(MsgPDFOnly)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if n == 0 && err != nil {
		return errors.New(MsgPDFOnly)
	}
	if detected := strings.ToLower(http.DetectContentType(buffer[:n])); detected != CVContentType {
		return errors.New(MsgPDFOnly)
	}

	if fh.Size > v.maxSize {
		return errors.New(MsgCVTooLarge)
	}
	return nil
}
