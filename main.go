package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tecnocarton/formsbackend/config"
	"github.com/tecnocarton/formsbackend/controllers"
	"github.com/tecnocarton/formsbackend/counter"
	"github.com/tecnocarton/formsbackend/logger"
	"github.com/tecnocarton/formsbackend/mailer"
	"github.com/tecnocarton/formsbackend/middleware"
	"github.com/tecnocarton/formsbackend/utils"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel), cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays)

	// Quote counter: Redis primary when configured, local file otherwise.
	var primary counter.PrimaryStore
	if cfg.RedisURL != "" {
		store, err := counter.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis config: %v", err)
		}
		primary = store
	} else {
		logger.Warnf("REDIS_URL not set, quote counter will use the local fallback file %s", cfg.CounterFile)
	}
	seq := counter.New(primary, cfg.CounterFile)

	var dispatch mailer.Dispatcher
	if cfg.ResendAPIKey != "" {
		dispatch = mailer.NewResendDispatcher(cfg.ResendAPIKey)
	} else {
		logger.Warnf("RESEND_API_KEY not set, writing outbound emails to %s", cfg.DevEmailDir)
		dispatch = mailer.NewDevDispatcher(cfg.DevEmailDir)
	}

	r := gin.New()

	allowedOrigins := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}
	logger.Infof("Allowed origins: %v", cfg.AllowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	cv := utils.NewCVValidator()
	r.POST("/api/contact", controllers.CreateQuoteRequest(cfg, seq, dispatch))
	r.POST("/api/postulacion", controllers.CreateJobApplication(cfg, cv, dispatch))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
