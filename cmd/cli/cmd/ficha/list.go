package ficha

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar todas las fichas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireSession(); err != nil {
			return err
		}

		fichas := app.Fichas.List(cmd.Context())
		if len(fichas) == 0 {
			color.Yellow("No hay fichas registradas todavía.")
			return nil
		}

		printFichas(fichas)
		return nil
	},
}
