package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Settings struct {
	Port          string
	RedisHost     string
	RedisPassword string
	SessionSecret string
	JWTSecret     string
	CORSOrigins   []string
	MenuFile      string
	ViewTTL       time.Duration

	ContactEndpoint  string
	ContactTimeout   time.Duration
	ContactRateLimit int

	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	ContactMailFrom string
	ContactMailTo   string
}

// Load charge le fichier .env s'il existe puis lit l'environnement.
func Load() Settings {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("⚠️  Aucun fichier .env trouvé: on continue avec les variables d'environnement du système")
	} else {
		logrus.Info("✅ Fichier .env chargé avec succès")
	}
	return FromEnv()
}

// FromEnv lit la configuration depuis l'environnement, avec des valeurs par défaut.
func FromEnv() Settings {
	s := Settings{
		Port:          getenv("PORT", "8080"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		MenuFile:      os.Getenv("MENU_FILE"),
		ViewTTL:       duration("VIEW_TTL", 30*time.Minute),

		ContactEndpoint:  os.Getenv("CONTACT_ENDPOINT"),
		ContactTimeout:   duration("CONTACT_TIMEOUT", 10*time.Second),
		ContactRateLimit: integer("CONTACT_RATE_LIMIT", 5),

		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        integer("SMTP_PORT", 587),
		SMTPUsername:    os.Getenv("SMTP_USERNAME"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		ContactMailFrom: getenv("CONTACT_MAIL_FROM", "noreply@resto.local"),
		ContactMailTo:   os.Getenv("CONTACT_MAIL_TO"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				s.CORSOrigins = append(s.CORSOrigins, o)
			}
		}
	}
	return s
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.Warnf("⚠️ %s invalide (%q), valeur par défaut %s", key, v, def)
		return def
	}
	return d
}

func integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.Warnf("⚠️ %s invalide (%q), valeur par défaut %d", key, v, def)
		return def
	}
	return n
}
