package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tecnocarton/formsbackend/config"
	"github.com/tecnocarton/formsbackend/counter"
	"github.com/tecnocarton/formsbackend/dto"
	"github.com/tecnocarton/formsbackend/logger"
	"github.com/tecnocarton/formsbackend/mailer"
	"github.com/tecnocarton/formsbackend/middleware"
	"github.com/tecnocarton/formsbackend/models"
	"github.com/tecnocarton/formsbackend/utils"
)

// Generic messages returned when the failure is not the client's fault.
// Provider and infrastructure detail stays in the server log.
const (
	msgProcessingError = "Error al procesar la solicitud"
	msgDispatchError   = "Error al enviar el email"
)

const maxListEntries = 10

// ====== CreateQuoteRequest (public) ============================================================
// POST /api/contact
// JSON body: dto.QuoteRequestDTO
func CreateQuoteRequest(cfg *config.AppConfig, seq counter.Service, dispatch mailer.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqID := c.GetString(middleware.RequestIDKey)

		var body dto.QuoteRequestDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			logger.Errorf("quote %s: unreadable body: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgProcessingError})
			return
		}

		q := models.QuoteSubmission{
			Producto:      utils.SanitizeInput(body.Producto, utils.MaxFieldLen),
			Cantidad:      utils.SanitizeInput(body.Cantidad, utils.MaxFieldLen),
			TiposCarton:   sanitizeList(body.TiposCarton),
			FormatosRollo: sanitizeList(body.FormatosRollo),
			Detalle:       utils.SanitizeInput(body.Detalle, utils.MaxFieldLen),
			Empresa:       utils.SanitizeInput(body.Empresa, utils.MaxFieldLen),
			Email:         strings.ToLower(utils.SanitizeInput(body.Email, utils.MaxFieldLen)),
			Telefono:      utils.SanitizePhone(body.Telefono),
		}

		// Validation failures stop the pipeline before any side effect:
		// no counter draw, no dispatch.
		if errs := utils.ValidateQuote(q.Producto, q.Empresa, q.Email, q.Telefono); len(errs) > 0 {
			logger.Debugf("quote %s: rejected with %d field errors", reqID, len(errs))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
			return
		}

		q.ProductName = config.ProductName(q.Producto)
		q.QuoteNumber = seq.NextNumber(ctx)

		subject, html := mailer.QuoteEmail(q)

		emailID, err := dispatch.Send(ctx, mailer.Message{
			From:    cfg.QuoteSender,
			To:      []string{cfg.QuoteRecipient},
			ReplyTo: q.Email,
			Subject: subject,
			HTML:    html,
		})
		if err != nil {
			// The drawn number is not rolled back; gaps are acceptable.
			logger.Errorf("quote %s: dispatch failed for #%d: %v", reqID, q.QuoteNumber, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgDispatchError})
			return
		}

		logger.Infof("quote %s: #%d dispatched, email id %s", reqID, q.QuoteNumber, emailID)
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Cotizacion enviada correctamente",
			"emailId":     emailID,
			"quoteNumber": q.QuoteNumber,
		})
	}
}

func sanitizeList(in []string) []string {
	if len(in) > maxListEntries {
		in = in[:maxListEntries]
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, utils.SanitizeInput(v, utils.MaxFieldLen))
	}
	return out
}
