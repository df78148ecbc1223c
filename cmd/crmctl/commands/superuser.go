package commands

import (
	"errors"
	"fmt"

	"github.com/jhoicas/pos-crm-api/internal/application/auth"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/pos-crm-api/internal/infrastructure/storage"
	"github.com/spf13/cobra"
)

var (
	suUsername string
	suPassword string
	suName     string
	suEmail    string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Crear una cuenta superuser",
	Long: `Crea un principal activo con is_staff e is_superuser. Sin creador.

Ejemplo:
  crmctl createsuperuser --username admin --password 's3creto'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if suUsername == "" || suPassword == "" {
			return errors.New("--username y --password son requeridos")
		}
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()
		files, err := infrastorage.NewLocal(e.cfg.Storage.UploadDir, e.cfg.Storage.BaseURL)
		if err != nil {
			return err
		}
		repos := postgres.NewRepositories(e.pool)
		uc := auth.NewAuthUseCase(repos.Principals, files, auth.JWTConfig{
			Secret:     e.cfg.JWT.Secret,
			ExpMinutes: e.cfg.JWT.Expiration,
			Issuer:     e.cfg.JWT.Issuer,
		}, e.log)
		p, err := uc.CreatePrincipal(cmd.Context(), "", dto.CreatePrincipalRequest{
			Username:    suUsername,
			Password:    suPassword,
			Name:        suName,
			Email:       suEmail,
			IsStaff:     true,
			IsSuperuser: true,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "superuser %s creado (%s)\n", p.Username, p.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createSuperuserCmd)
	createSuperuserCmd.Flags().StringVar(&suUsername, "username", "", "username (máx. 30)")
	createSuperuserCmd.Flags().StringVar(&suPassword, "password", "", "contraseña (mín. 6)")
	createSuperuserCmd.Flags().StringVar(&suName, "name", "", "nombre visible")
	createSuperuserCmd.Flags().StringVar(&suEmail, "email", "", "email")
}
