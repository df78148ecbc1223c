package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/jhoicas/pos-crm-api/pkg/config"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/rs/zerolog"
)

const (
	defaultMaxConns = 25
	defaultMinConns = 2
)

var errNoIPv4 = errors.New("sin dirección IPv4")

// NewPool abre el pool del CRM y verifica la conexión con un ping.
// Los NUMERIC se leen como decimal.Decimal; el SQL se traza en debug.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(dsnFor(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.ForceIPv4 {
		pcfg.ConnConfig.DialFunc = dialIPv4
	}
	pcfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   queryLogger(log.Component("postgres")),
		LogLevel: tracelog.LogLevelDebug,
	}

	pcfg.MaxConns = orDefault(cfg.MaxConns, defaultMaxConns)
	pcfg.MinConns = orDefault(cfg.MinConns, defaultMinConns)
	if pcfg.MinConns > pcfg.MaxConns {
		pcfg.MinConns = pcfg.MaxConns
	}
	pcfg.MaxConnLifetime = time.Hour
	pcfg.MaxConnIdleTime = 30 * time.Minute
	pcfg.HealthCheckPeriod = time.Minute

	pcfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	log.Info().
		Int32("max_conns", pcfg.MaxConns).
		Bool("force_ipv4", cfg.ForceIPv4).
		Msg("pool PostgreSQL listo")
	return pool, nil
}

func orDefault(v, def int32) int32 {
	if v <= 0 {
		return def
	}
	return v
}

// dsnFor arma el DSN y, con ForceIPv4, sustituye el host por su IPv4.
func dsnFor(cfg config.DBConfig) string {
	if !cfg.ForceIPv4 {
		return cfg.ConnectionString()
	}
	if cfg.DatabaseURL != "" {
		return urlWithIPv4(cfg.DatabaseURL)
	}
	if ip, err := lookupIPv4(context.Background(), cfg.Host); err == nil {
		cfg.Host = ip
	}
	return cfg.DSN()
}

// dialIPv4 disca por tcp4 cuando el host tiene IPv4; si no, dial normal.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := lookupIPv4(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

// lookupIPv4 prueba el resolver del sistema y después uno público, porque el
// DNS de algunos contenedores solo devuelve registros AAAA.
func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errNoIPv4
	}
	if ip, err := firstIPv4(ctx, net.DefaultResolver, host); err == nil {
		return ip, nil
	}
	public := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	return firstIPv4(ctx, public, host)
}

func firstIPv4(ctx context.Context, r *net.Resolver, host string) (string, error) {
	ips, err := r.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", errNoIPv4
}

func urlWithIPv4(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	ip, err := lookupIPv4(context.Background(), u.Hostname())
	if err != nil {
		return raw
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ip, port)
	return u.String()
}

// queryLogger lleva los eventos de tracelog a zerolog. Las consultas
// exitosas quedan en debug; warn y error conservan su nivel.
func queryLogger(log *logger.Logger) tracelog.LoggerFunc {
	return func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		var ev *zerolog.Event
		switch level {
		case tracelog.LogLevelError:
			ev = log.Error()
		case tracelog.LogLevelWarn:
			ev = log.Warn()
		case tracelog.LogLevelInfo:
			ev = log.Debug()
		default:
			ev = log.Trace()
		}
		ev.Fields(data).Msg(msg)
	}
}
