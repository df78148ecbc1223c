package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jhoicas/pos-crm-api/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones de base de datos",
	Long: `Subcomandos:
  up      aplica las migraciones pendientes
  status  muestra aplicadas y pendientes`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplicar migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()
		n, err := postgres.Migrate(cmd.Context(), e.pool, e.log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d migraciones aplicadas\n", n)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Estado de las migraciones",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()
		all, err := postgres.Migrations()
		if err != nil {
			return err
		}
		applied, err := postgres.AppliedMigrations(cmd.Context(), e.pool)
		if err != nil {
			return err
		}
		at := make(map[string]string, len(applied))
		for _, a := range applied {
			at[a.Version] = a.AppliedAt.Format("2006-01-02 15:04:05")
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED")
		for _, m := range all {
			when, ok := at[m.Version]
			if !ok {
				when = "pendiente"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Version, m.Name, when)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}
