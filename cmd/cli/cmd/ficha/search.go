package ficha

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
	"gestorfichas/internal/domain/ficha"
)

var SearchCmd = &cobra.Command{
	Use:   "search [término]",
	Short: "Buscar fichas por nombre",
	Long:  `Busca el término como subcadena del nombre, sin distinguir mayúsculas.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireSession(); err != nil {
			return err
		}

		term := termFromArgs(args)
		matches := app.Fichas.SearchByName(cmd.Context(), term)
		if len(matches) == 0 {
			color.Yellow("No se encuentran coincidencias.")
			return nil
		}

		color.Green("Se encontraron %d coincidencia/s:", len(matches))
		fichas := make([]ficha.Ficha, 0, len(matches))
		for _, m := range matches {
			fichas = append(fichas, m.Ficha)
		}
		printFichas(fichas)
		return nil
	},
}

func termFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return prompt.Line("Introduce el nombre a buscar: ")
}
