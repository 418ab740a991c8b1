package routes

import (
	"time"

	"resto_web/internal/handlers"
	"resto_web/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	Cookies          sessions.Store
	Redis            *redis.Client // nil : pas de rate limit sur le contact
	ContactRateLimit int
	CORSOrigins      []string
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", handlers.Healthz)

	api := r.Group("/api")
	api.GET("/menu", h.GetMenu)
	api.POST("/views", h.OpenView)

	// Panier de la vue
	cartGroup := api.Group("/cart", middleware.ViewRequired(h.JWTSecret))
	cartGroup.GET("", h.GetCart)
	cartGroup.GET("/html", h.GetCartHTML)
	cartGroup.GET("/ws", h.CartWebSocket)
	cartGroup.POST("/items", h.AddToCart)
	cartGroup.DELETE("/items/:name", h.RemoveFromCart)
	cartGroup.POST("/clear", h.ClearCart)

	// Contact
	contactChain := []gin.HandlerFunc{}
	if opts.Redis != nil {
		contactChain = append(contactChain, middleware.ContactRateLimit(opts.Redis, opts.ContactRateLimit))
	}
	contactChain = append(contactChain, h.SubmitContact)
	api.POST("/contact", contactChain...)

	// Session de démonstration
	sessionGroup := api.Group("/session", middleware.ClientIdentity(opts.Cookies))
	sessionGroup.GET("", h.GetSession)
	sessionGroup.POST("/login", h.Login)
	sessionGroup.POST("/logout", h.Logout)
}
