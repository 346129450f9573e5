package mailer

import (
	"fmt"
	"strings"

	"github.com/tecnocarton/formsbackend/config"
	"github.com/tecnocarton/formsbackend/models"
)

// The renderers below embed field values directly into markup and perform
// no escaping of their own: they must only ever receive sanitized input.
// Given the same submission (and quote number) the output is byte-identical.

const quoteSpecBlock = `<div class="field">
          <span class="field-label">%s</span>
          <span class="field-value">%s</span>
        </div>`

const quoteDetalleBlock = `<div class="field">
          <span class="field-label">Detalles adicionales:</span>
          <div class="detalle-box">%s</div>
        </div>`

const quoteTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #2E6A80, #3d8299); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f8f9fa; padding: 20px; border: 1px solid #e9ecef; }
    .section { margin-bottom: 20px; }
    .section-title { font-size: 12px; color: #6c757d; text-transform: uppercase; margin-bottom: 8px; font-weight: 600; }
    .field { margin-bottom: 12px; }
    .field-label { font-weight: 600; color: #2E6A80; }
    .field-value { color: #333; }
    .footer { background: #2E6A80; color: white; padding: 15px 20px; border-radius: 0 0 8px 8px; font-size: 12px; }
    .highlight { background: #EE7E31; color: white; padding: 4px 12px; border-radius: 4px; display: inline-block; }
    .detalle-box { background: white; padding: 12px; border-radius: 6px; border-left: 3px solid #EE7E31; margin-top: 8px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 24px;">Solicitud de Cotizacion #%d</h1>
      <p style="margin: 8px 0 0; opacity: 0.9;">Recibida desde tecnocarton.cl</p>
    </div>

    <div class="content">
      <div class="section">
        <div class="section-title">Producto Solicitado</div>
        <div class="field">
          <span class="highlight">%s</span>
        </div>
        <div class="field">
          <span class="field-label">Cantidad:</span>
          <span class="field-value">%s</span>
        </div>
        %s
        %s
      </div>

      <div class="section">
        <div class="section-title">Datos del Cliente</div>
        <div class="field">
          <span class="field-label">Empresa/Nombre:</span>
          <span class="field-value">%s</span>
        </div>
        <div class="field">
          <span class="field-label">Email:</span>
          <span class="field-value"><a href="mailto:%s">%s</a></span>
        </div>
        <div class="field">
          <span class="field-label">Telefono:</span>
          <span class="field-value"><a href="tel:%s">%s</a></span>
        </div>
      </div>
    </div>

    <div class="footer">
      <p style="margin: 0;">Para responder, simplemente responde a este email o usa el telefono del cliente.</p>
      <p style="margin: 8px 0 0; opacity: 0.7;">Enviado desde el formulario de cotizacion de tecnocarton.cl</p>
    </div>
  </div>
</body>
</html>`

// QuoteEmail renders the quote notification. Cardboard types appear only
// for "planchas", roll formats (suffixed " kg") only for "rollos", and the
// detail box only when non-empty; omitted sections render as empty strings.
func QuoteEmail(q models.QuoteSubmission) (subject, html string) {
	subject = fmt.Sprintf("Cotizacion #%d - %s - %s", q.QuoteNumber, q.ProductName, q.Empresa)

	cantidad := q.Cantidad
	if cantidad == "" {
		cantidad = "No especificada"
	}

	var specs string
	switch {
	case q.Producto == "planchas" && len(q.TiposCarton) > 0:
		specs = fmt.Sprintf(quoteSpecBlock, "Tipos de carton:", strings.Join(q.TiposCarton, ", "))
	case q.Producto == "rollos" && len(q.FormatosRollo) > 0:
		withKg := make([]string, len(q.FormatosRollo))
		for i, f := range q.FormatosRollo {
			withKg[i] = f + " kg"
		}
		specs = fmt.Sprintf(quoteSpecBlock, "Formatos de rollo:", strings.Join(withKg, ", "))
	}

	var detalle string
	if q.Detalle != "" {
		detalle = fmt.Sprintf(quoteDetalleBlock, strings.ReplaceAll(q.Detalle, "\n", "<br>"))
	}

	html = fmt.Sprintf(quoteTemplate,
		q.QuoteNumber,
		q.ProductName,
		cantidad,
		specs,
		detalle,
		q.Empresa,
		q.Email, q.Email,
		q.Telefono, q.Telefono,
	)
	return subject, html
}

const applicationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #2E6A80, #3d8299); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f8f9fa; padding: 20px; border: 1px solid #e9ecef; }
    .section { margin-bottom: 20px; }
    .section-title { font-size: 12px; color: #6c757d; text-transform: uppercase; margin-bottom: 8px; font-weight: 600; }
    .field { margin-bottom: 12px; }
    .field-label { font-weight: 600; color: #2E6A80; }
    .field-value { color: #333; }
    .footer { background: #2E6A80; color: white; padding: 15px 20px; border-radius: 0 0 8px 8px; font-size: 12px; }
    .motivacion-box { background: white; padding: 16px; border-radius: 8px; border-left: 4px solid #EE7E31; margin-top: 8px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 24px;">Nueva Postulación</h1>
      <p style="margin: 8px 0 0; opacity: 0.9;">Recibida desde tecnocarton.cl</p>
    </div>

    <div class="content">
      <div class="section">
        <div class="section-title">Datos del Postulante</div>
        <div class="field">
          <span class="field-label">Nombre:</span>
          <span class="field-value">%s</span>
        </div>
        <div class="field">
          <span class="field-label">Email:</span>
          <span class="field-value"><a href="mailto:%s">%s</a></span>
        </div>
        <div class="field">
          <span class="field-label">Teléfono:</span>
          <span class="field-value"><a href="tel:%s">%s</a></span>
        </div>
      </div>

      <div class="section">
        <div class="section-title">Motivación</div>
        <div class="motivacion-box">
          %s
        </div>
      </div>

      <div class="section">
        <div class="section-title">CV Adjunto</div>
        <div class="field">
          <span class="field-value">%s (%.2f MB)</span>
        </div>
      </div>
    </div>

    <div class="footer">
      <p style="margin: 0;">Para responder, simplemente responde a este email o usa el teléfono del postulante.</p>
      <p style="margin: 8px 0 0; opacity: 0.7;">Enviado desde el formulario de postulación de tecnocarton.cl</p>
    </div>
  </div>
</body>
</html>`

// ApplicationEmail renders the job-application notification.
func ApplicationEmail(a models.JobApplication) (subject, html string) {
	subject = fmt.Sprintf("%s - %s", config.RecruitmentSubjectPrefix, a.Nombre)

	html = fmt.Sprintf(applicationTemplate,
		a.Nombre,
		a.Email, a.Email,
		a.Telefono, a.Telefono,
		strings.ReplaceAll(a.Motivacion, "\n", "<br>"),
		a.CVFilename,
		float64(a.CVSize)/1024/1024,
	)
	return subject, html
}
