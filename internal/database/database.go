package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/config"
)

type Database struct {
	PG     *pgxpool.Pool
	Redis  *RedisClients
	logger *logrus.Logger
}

type RedisClients struct {
	Hot  *redis.Client // sessions, rate limits
	Warm *redis.Client // snapshots, recommendation results
}

func New(cfg *config.Config, logger *logrus.Logger) (*Database, error) {
	db := &Database{
		logger: logger,
	}

	if err := db.initPostgreSQL(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}

	if err := db.initRedis(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	return db, nil
}

func (db *Database) initPostgreSQL(cfg *config.Config) error {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to parse PostgreSQL config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
	poolConfig.MaxConnIdleTime = cfg.Database.MaxIdleTime
	poolConfig.MaxConnLifetime = cfg.Database.MaxLifetime
	poolConfig.ConnConfig.ConnectTimeout = cfg.Database.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create PostgreSQL pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	db.PG = pool
	db.logger.Info("PostgreSQL connection established")
	return nil
}

func (db *Database) initRedis(cfg *config.Config) error {
	db.Redis = &RedisClients{
		Hot: redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Hot.URL,
			MaxRetries:   cfg.Redis.Hot.MaxRetries,
			PoolSize:     cfg.Redis.Hot.PoolSize,
			ReadTimeout:  cfg.Redis.Hot.Timeout,
			WriteTimeout: cfg.Redis.Hot.Timeout,
		}),
		Warm: redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Warm.URL,
			MaxRetries:   cfg.Redis.Warm.MaxRetries,
			PoolSize:     cfg.Redis.Warm.PoolSize,
			ReadTimeout:  cfg.Redis.Warm.Timeout,
			WriteTimeout: cfg.Redis.Warm.Timeout,
		}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, client := range map[string]*redis.Client{"hot": db.Redis.Hot, "warm": db.Redis.Warm} {
		if err := client.Ping(ctx).Err(); err != nil {
			db.logger.WithError(err).Warnf("Redis %s instance unreachable, continuing degraded", name)
		}
	}

	db.logger.Info("Redis clients initialized")
	return nil
}

func (db *Database) Close() error {
	if db.PG != nil {
		db.PG.Close()
	}
	if db.Redis != nil {
		if err := db.Redis.Hot.Close(); err != nil {
			return err
		}
		if err := db.Redis.Warm.Close(); err != nil {
			return err
		}
	}
	return nil
}
