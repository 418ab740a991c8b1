package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"resto_web/internal/catalog"
	"resto_web/internal/config"
	"resto_web/internal/contact"
	"resto_web/internal/database"
	"resto_web/internal/handlers"
	"resto_web/internal/routes"
	"resto_web/internal/session"
	"resto_web/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SessionSecret == "" {
		logrus.Fatal("❌ SESSION_SECRET manquant dans .env")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	menu, err := loadMenu(cfg)
	if err != nil {
		logrus.Fatalf("❌ Impossible de charger le menu: %v", err)
	}
	logrus.Infof("✅ Menu chargé (%d plats)", len(menu.Items()))

	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		logrus.Fatalf("❌ %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var store session.Store = session.NewMemoryStore()
	if rdb != nil {
		store = session.NewRedisStore(rdb, "session:", 0)
	}

	registry := views.NewRegistry(cfg.ViewTTL)
	go registry.RunJanitor(ctx, time.Minute)

	h := &handlers.Handler{
		Views:     registry,
		Catalog:   menu,
		Contact:   contact.NewService(contactTransport(cfg)),
		Sessions:  session.NewManager(store),
		JWTSecret: []byte(cfg.JWTSecret),
	}

	r := gin.Default()
	routes.RegisterRoutes(r, h, routes.Options{
		Cookies:          newCookieStore(cfg.SessionSecret),
		Redis:            rdb,
		ContactRateLimit: cfg.ContactRateLimit,
		CORSOrigins:      cfg.CORSOrigins,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logrus.Infof("🚀 Serveur lancé sur le port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("❌ %v", err)
	}
	logrus.Info("👋 Serveur arrêté")
}

func loadMenu(cfg config.Settings) (*catalog.Catalog, error) {
	if cfg.MenuFile != "" {
		return catalog.LoadFile(cfg.MenuFile)
	}
	return catalog.Default()
}

func contactTransport(cfg config.Settings) contact.Transport {
	if cfg.SMTPHost != "" && cfg.ContactMailTo != "" {
		t, err := contact.NewMailTransport(contact.MailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.ContactMailFrom,
			To:       cfg.ContactMailTo,
		})
		if err == nil {
			logrus.Info("✅ Formulaire de contact relayé par SMTP")
			return t
		}
		logrus.Warnf("⚠️ SMTP indisponible, repli sur HTTP: %v", err)
	}
	return contact.NewHTTPTransport(cfg.ContactEndpoint, cfg.ContactTimeout)
}

// newCookieStore configure le cookie qui identifie le navigateur.
func newCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
