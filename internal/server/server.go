package server

import (
	"ctchen222/travel-assistant/internal/api/controller"
	"ctchen222/travel-assistant/internal/api/middleware"
	"ctchen222/travel-assistant/internal/validator"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options configures the HTTP surface.
type Options struct {
	CORSOrigins []string
}

type Server struct {
	engine *gin.Engine
}

// NewServer builds the gin engine with the public auth routes and the bearer-protected
// assistant routes.
func NewServer(opts Options, users *controller.UserController, assistant *controller.AssistantController, tokens middleware.TokenValidator) *Server {
	if err := validator.RegisterGin(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.POST("/register", users.Register)
	r.POST("/login", users.Login)

	authed := r.Group("")
	authed.Use(middleware.BearerAuth(tokens))
	{
		authed.POST("/ask", assistant.Ask)
		authed.GET("/history", assistant.History)
	}

	return &Server{engine: r}
}

// Engine returns the HTTP handler serving all routes.
func (s *Server) Engine() http.Handler {
	return s.engine
}
