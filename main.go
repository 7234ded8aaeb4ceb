package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hillcrest/homestay-api/internal/config"
	"github.com/hillcrest/homestay-api/internal/db"
	"github.com/hillcrest/homestay-api/internal/handlers/bookings"
	"github.com/hillcrest/homestay-api/internal/handlers/registrations"
	"github.com/hillcrest/homestay-api/internal/mailer"
	"github.com/hillcrest/homestay-api/internal/middleware"
)

func main() {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	d, err := db.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer d.Close()
	log.Printf("MySQL connected")

	smtp, err := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	if err != nil {
		log.Fatalf("smtp: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorFallback())
	r.Use(cors.Default())

	bookH := bookings.NewHandler(d, smtp, cfg.EmailUser, cfg.AdminEmail)
	regH := registrations.NewHandler(d)

	r.POST("/api/book", bookH.Create)
	r.POST("/api/register", regH.Create)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Static site for everything outside the API routes.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir("./public"))))

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	_ = r.Run(addr)
}
