package server

import (
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/app"
	"jobboard-api/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wraps the gin engine together with the application container so
// route registration can reach every handler dependency.
type Server struct {
	router *gin.Engine
	app    *app.Application
}

func NewServer(app *app.Application) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))
	router.Use(metrics.Middleware())
	router.Use(middleware.Logger())

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	return &Server{
		router: router,
		app:    app,
	}
}

// corsConfig allows the configured origins, with "*" acting as a wildcard.
// Content-Disposition is exposed so browsers can read resume download names.
func corsConfig(allowedOrigins []string) cors.Config {
	log.Printf("Configuring CORS for origins: %v", allowedOrigins)
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func (s *Server) Start() error {
	routes.RegisterRoutes(s.router, s.app)

	addr := fmt.Sprintf("%s:%d", s.app.Config.Server.Host, s.app.Config.Server.Port)
	log.Printf("Server starting on %s", addr)
	return s.router.Run(addr)
}
