package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tecnocarton/formsbackend/models"
)

func sampleQuote() models.QuoteSubmission {
	return models.QuoteSubmission{
		Producto:    "planchas",
		ProductName: "Planchas corrugadas",
		Cantidad:    "500",
		TiposCarton: []string{"12C", "17C"},
		Empresa:     "Acme",
		Email:       "a@b.cl",
		Telefono:    "+56 9 1111 2222",
		QuoteNumber: 123,
	}
}

func TestQuoteEmailDeterministic(t *testing.T) {
	q := sampleQuote()
	s1, h1 := QuoteEmail(q)
	s2, h2 := QuoteEmail(q)
	assert.Equal(t, s1, s2)
	assert.Equal(t, h1, h2)
}

func TestQuoteEmailSubject(t *testing.T) {
	subject, _ := QuoteEmail(sampleQuote())
	assert.Equal(t, "Cotizacion #123 - Planchas corrugadas - Acme", subject)
}

func TestQuoteEmailBody(t *testing.T) {
	_, html := QuoteEmail(sampleQuote())
	assert.Contains(t, html, "Solicitud de Cotizacion #123")
	assert.Contains(t, html, "Planchas corrugadas")
	assert.Contains(t, html, "Tipos de carton:")
	assert.Contains(t, html, "12C, 17C")
	assert.Contains(t, html, `<a href="mailto:a@b.cl">a@b.cl</a>`)
	assert.Contains(t, html, `<a href="tel:+56 9 1111 2222">`)
	assert.NotContains(t, html, "Formatos de rollo:")
	assert.NotContains(t, html, "Detalles adicionales:")
}

func TestQuoteEmailRollFormats(t *testing.T) {
	q := sampleQuote()
	q.Producto = "rollos"
	q.ProductName = "Rollos de corrugado"
	q.TiposCarton = nil
	q.FormatosRollo = []string{"300", "500"}

	_, html := QuoteEmail(q)
	assert.Contains(t, html, "Formatos de rollo:")
	assert.Contains(t, html, "300 kg, 500 kg")
	assert.NotContains(t, html, "Tipos de carton:")
}

func TestQuoteEmailSpecsOnlyForMatchingProduct(t *testing.T) {
	q := sampleQuote()
	q.Producto = "troquelado"
	q.ProductName = "Cartón troquelado"
	q.FormatosRollo = []string{"300"}

	// lists for other products are ignored, not rendered
	_, html := QuoteEmail(q)
	assert.NotContains(t, html, "Tipos de carton:")
	assert.NotContains(t, html, "Formatos de rollo:")
}

func TestQuoteEmailDetalle(t *testing.T) {
	q := sampleQuote()
	q.Detalle = "linea uno\nlinea dos"

	_, html := QuoteEmail(q)
	assert.Contains(t, html, "Detalles adicionales:")
	assert.Contains(t, html, "linea uno<br>linea dos")
}

func TestQuoteEmailEmptyCantidad(t *testing.T) {
	q := sampleQuote()
	q.Cantidad = ""

	_, html := QuoteEmail(q)
	assert.Contains(t, html, "No especificada")
}

func TestApplicationEmail(t *testing.T) {
	a := models.JobApplication{
		Nombre:     "Juana Pérez",
		Email:      "juana@mail.cl",
		Telefono:   "987654321",
		Motivacion: "primera linea\nsegunda linea con bastante texto",
		CVFilename: "cv.pdf",
		CVSize:     524288,
	}

	subject, html := ApplicationEmail(a)
	assert.Equal(t, "Postulación Web - Juana Pérez", subject)
	assert.Contains(t, html, "Nueva Postulación")
	assert.Contains(t, html, "Juana Pérez")
	assert.Contains(t, html, "primera linea<br>segunda linea")
	assert.Contains(t, html, "cv.pdf (0.50 MB)")
	assert.Contains(t, html, `<a href="mailto:juana@mail.cl">`)

	_, again := ApplicationEmail(a)
	assert.Equal(t, html, again)
}

func TestTemplatesAreSelfContainedDocuments(t *testing.T) {
	_, quote := QuoteEmail(sampleQuote())
	_, app := ApplicationEmail(models.JobApplication{CVFilename: "cv.pdf"})
	for _, html := range []string{quote, app} {
		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		assert.Contains(t, html, "</html>")
		assert.NotContains(t, html, "%!") // no leftover format verbs
	}
}
