package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/types"
	"gestorfichas/internal/app/cli"
)

var repairIDsCmd = &cobra.Command{
	Use:   "repair-ids",
	Short: "Completar los ids de fichas antiguas",
	Long: `Asigna un id a las fichas guardadas antes de que el id fuera
obligatorio. Las fichas que ya tienen id no se tocan.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*cli.App)

		if _, err := app.RequireAdmin(); err != nil {
			return err
		}

		repaired, err := app.Fichas.RepairIDs(cmd.Context())
		if err != nil {
			return err
		}
		if repaired == 0 {
			color.Yellow("Todas las fichas ya tienen id.")
			return nil
		}

		color.Green("Se han reparado %d ficha/s.", repaired)
		return nil
	},
}
