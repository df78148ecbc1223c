package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-crm-api/pkg/config"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	// flags globales
	dbURL   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "Tareas de administración del POS CRM",
	Long: `crmctl agrupa las tareas operativas que no pasan por la API:

  migrate          aplica o lista las migraciones embebidas
  createsuperuser  crea la primera cuenta superuser
  seed-countries   carga el catálogo inicial de países`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "connection string de PostgreSQL (por defecto DATABASE_URL / DB_*)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log de depuración")
}

// env configuración, logger y pool compartidos por los subcomandos.
type env struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if dbURL != "" {
		cfg.DB.DatabaseURL = dbURL
	}
	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level}).Component("crmctl")
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &env{cfg: cfg, log: log, pool: pool}, nil
}

func (e *env) Close() {
	e.pool.Close()
}
