package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tecnocarton/formsbackend/config"
	"github.com/tecnocarton/formsbackend/dto"
	"github.com/tecnocarton/formsbackend/logger"
	"github.com/tecnocarton/formsbackend/mailer"
	"github.com/tecnocarton/formsbackend/middleware"
	"github.com/tecnocarton/formsbackend/models"
	"github.com/tecnocarton/formsbackend/utils"
)

// ====== CreateJobApplication (public) ==========================================================
// POST /api/postulacion
// multipart/form-data:
//   - nombre, email, telefono, motivacion: text fields
//   - cv: PDF file, at most 2MB
func CreateJobApplication(cfg *config.AppConfig, cvValidator *utils.CVValidator, dispatch mailer.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqID := c.GetString(middleware.RequestIDKey)

		var body dto.JobApplicationDTO
		if err := c.ShouldBind(&body); err != nil {
			logger.Errorf("application %s: unreadable body: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgProcessingError})
			return
		}

		app := models.JobApplication{
			Nombre:     utils.SanitizeInput(body.Nombre, utils.MaxLongFieldLen),
			Email:      strings.ToLower(utils.SanitizeInput(body.Email, utils.MaxLongFieldLen)),
			Telefono:   utils.SanitizePhone(body.Telefono),
			Motivacion: utils.SanitizeInput(body.Motivacion, utils.MaxLongFieldLen),
		}

		cv, err := c.FormFile("cv")
		if err != nil {
			cv = nil
		}

		if errs := utils.ValidateApplication(app.Nombre, app.Email, app.Telefono, app.Motivacion, cv); len(errs) > 0 {
			logger.Debugf("application %s: rejected with %d field errors", reqID, len(errs))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
			return
		}

		if err := cvValidator.Validate(cv); err != nil {
			logger.Debugf("application %s: cv rejected: %v", reqID, err)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		file, err := cv.Open()
		if err != nil {
			logger.Errorf("application %s: open cv: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgProcessingError})
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.Errorf("application %s: read cv: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgProcessingError})
			return
		}
		app.CVFilename = cv.Filename
		app.CVSize = cv.Size
		app.CV = content

		subject, html := mailer.ApplicationEmail(app)

		emailID, err := dispatch.Send(ctx, mailer.Message{
			From:    cfg.RecruitmentSender,
			To:      []string{cfg.RecruitmentRecipient},
			ReplyTo: app.Email,
			Subject: subject,
			HTML:    html,
			Attachments: []mailer.Attachment{
				{Filename: app.CVFilename, Content: app.CV},
			},
		})
		if err != nil {
			logger.Errorf("application %s: dispatch failed: %v", reqID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgDispatchError})
			return
		}

		logger.Infof("application %s: dispatched, email id %s", reqID, emailID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Postulación enviada correctamente",
			"emailId": emailID,
		})
	}
}
