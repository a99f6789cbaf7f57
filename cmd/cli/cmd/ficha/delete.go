package ficha

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [término]",
	Short: "Borrar una ficha",
	Long:  `Busca la ficha por nombre y la borra tras pedir confirmación.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireSession(); err != nil {
			return err
		}

		match, ok := selectMatch(cmd, args)
		if !ok {
			return nil
		}

		if !prompt.Confirm("¿Borrar la ficha de \"" + match.Ficha.Nombre + "\"?") {
			color.Yellow("Cancelado.")
			return nil
		}

		removed, err := app.Fichas.Delete(cmd.Context(), match.Index)
		if err != nil {
			return err
		}

		color.Green("Ficha de %s borrada.", removed.Nombre)
		return nil
	},
}
