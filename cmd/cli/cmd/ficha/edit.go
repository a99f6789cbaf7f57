package ficha

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
	"gestorfichas/internal/domain/ficha"
)

var EditCmd = &cobra.Command{
	Use:   "edit [término]",
	Short: "Editar una ficha",
	Long: `Busca la ficha por nombre y permite cambiar campo a campo. Un
campo dejado en blanco mantiene su valor actual.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireSession(); err != nil {
			return err
		}

		match, ok := selectMatch(cmd, args)
		if !ok {
			return nil
		}

		changes := askChanges(match.Ficha)
		if changes == (ficha.Changes{}) {
			color.Yellow("Sin cambios.")
			return nil
		}

		updated, err := app.Fichas.Update(cmd.Context(), match.Index, changes)
		if err != nil {
			return err
		}

		color.Green("Ficha actualizada: %s / %d / %s", updated.Nombre, updated.Edad, updated.Ciudad)
		return nil
	},
}

// selectMatch resolves the search term to a single ficha, asking the user to
// choose when several names match.
func selectMatch(cmd *cobra.Command, args []string) (ficha.Match, bool) {
	app := appFrom(cmd)

	matches := app.Fichas.SearchByName(cmd.Context(), termFromArgs(args))
	if len(matches) == 0 {
		color.Yellow("No se encuentran coincidencias.")
		return ficha.Match{}, false
	}
	if len(matches) == 1 {
		return matches[0], true
	}

	fichas := make([]ficha.Ficha, 0, len(matches))
	for _, m := range matches {
		fichas = append(fichas, m.Ficha)
	}
	printFichas(fichas)
	chosen := prompt.Index("Elige una ficha: ", len(matches))
	return matches[chosen], true
}

func askChanges(current ficha.Ficha) ficha.Changes {
	var changes ficha.Changes

	if nombre := prompt.Line("Nuevo nombre (vacío para mantener \"" + current.Nombre + "\"): "); nombre != "" {
		changes.Nombre = &nombre
	}
	for {
		raw := prompt.Line("Nueva edad (vacío para mantener " + strconv.Itoa(current.Edad) + "): ")
		if raw == "" {
			break
		}
		edad, err := strconv.Atoi(raw)
		if err == nil && edad > 0 {
			changes.Edad = &edad
			break
		}
		color.Yellow("No has introducido un número válido.")
	}
	if ciudad := prompt.Line("Nueva ciudad (vacío para mantener \"" + current.Ciudad + "\"): "); ciudad != "" {
		changes.Ciudad = &ciudad
	}

	return changes
}
