package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/jhoicas/parser-config-api/pkg/config"
	"github.com/jhoicas/parser-config-api/pkg/logger"
)

// NewPool crea un pool de conexiones PostgreSQL y verifica la conexión con Ping.
// Reintenta cfg.ConnectRetries veces separadas por cfg.RetryDelay: al arrancar con
// docker-compose la base suele tardar unos segundos más que la API.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC/DECIMAL -> shopspring/decimal en todas las conexiones del pool
	// (el explorador de tablas devuelve así los montos sin perder precisión).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	var pool *pgxpool.Pool
	err = retry(ctx, cfg.ConnectRetries, cfg.RetryDelay, func(ctx context.Context) error {
		p, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return fmt.Errorf("crear pool: %w", err)
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return fmt.Errorf("ping DB: %w", err)
		}
		pool = p
		return nil
	}, func(attempt int, err error) {
		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_attempts", cfg.ConnectRetries).
			Dur("retry_in", cfg.RetryDelay).
			Msg("conexión a PostgreSQL fallida")
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("db", cfg.DBName).Msg("conexión a PostgreSQL establecida")
	return pool, nil
}

// retry ejecuta fn hasta attempts veces, esperando delay entre intentos fallidos.
// onErr se llama tras cada fallo que todavía deja intentos por delante.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error, onErr func(int, error)) error {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if onErr != nil {
			onErr(attempt, lastErr)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("conexión cancelada: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("no se pudo conectar a la base tras %d intentos: %w", attempts, lastErr)
}
