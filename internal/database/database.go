package database

import (
	"context"
	"time"

	"resto_web/internal/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis ouvre la connexion Redis si REDIS_HOST est configuré.
// Sans hôte, retourne (nil, nil) : l'application tourne alors en mémoire.
func ConnectRedis(ctx context.Context, cfg config.Settings) (*redis.Client, error) {
	if cfg.RedisHost == "" {
		logrus.Warn("⚠️ REDIS_HOST non configuré: sessions en mémoire, pas de rate limit")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrap(err, "impossible de se connecter à Redis")
	}

	logrus.Info("✅ Connecté à Redis")
	return rdb, nil
}
