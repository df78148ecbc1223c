package commands

import (
	"errors"
	"fmt"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	infracache "github.com/jhoicas/pos-crm-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
	"github.com/spf13/cobra"
)

// defaultCountries catálogo inicial: nombre, prefijo telefónico, abreviatura.
var defaultCountries = []dto.CountryRequest{
	{Name: "United Kingdom", Code: "+44", Abbreviation: "UK"},
	{Name: "Ireland", Code: "+353", Abbreviation: "IE"},
	{Name: "France", Code: "+33", Abbreviation: "FR"},
	{Name: "Germany", Code: "+49", Abbreviation: "DE"},
	{Name: "Spain", Code: "+34", Abbreviation: "ES"},
	{Name: "Italy", Code: "+39", Abbreviation: "IT"},
	{Name: "Portugal", Code: "+351", Abbreviation: "PT"},
	{Name: "Poland", Code: "+48", Abbreviation: "PL"},
	{Name: "Romania", Code: "+40", Abbreviation: "RO"},
	{Name: "Turkey", Code: "+90", Abbreviation: "TR"},
	{Name: "India", Code: "+91", Abbreviation: "IN"},
	{Name: "Pakistan", Code: "+92", Abbreviation: "PK"},
	{Name: "Bangladesh", Code: "+880", Abbreviation: "BD"},
	{Name: "China", Code: "+86", Abbreviation: "CN"},
	{Name: "Nigeria", Code: "+234", Abbreviation: "NG"},
	{Name: "United States", Code: "+1", Abbreviation: "US"},
}

var seedCountriesCmd = &cobra.Command{
	Use:   "seed-countries",
	Short: "Cargar el catálogo inicial de países",
	Long:  "Inserta los países que falten. Los ya existentes se omiten.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()
		repos := postgres.NewRepositories(e.pool)
		uc := usecase.NewCountryUseCase(repos.Countries, infracache.Noop{}, e.log, metrics.New("crmctl"))
		created, skipped := 0, 0
		for _, c := range defaultCountries {
			_, err := uc.Create(cmd.Context(), "", c)
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrDuplicate):
				skipped++
			default:
				return fmt.Errorf("país %s: %w", c.Name, err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d países creados, %d ya existían\n", created, skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCountriesCmd)
}
