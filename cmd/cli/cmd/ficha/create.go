package ficha

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
	"gestorfichas/internal/domain/ficha"
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Crear una ficha nueva",
	Long: `Pide nombre, edad y ciudad por consola, validando cada campo, y
guarda la ficha. Si ya existe una ficha con el mismo nombre se pide
confirmación antes de crearla.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireSession(); err != nil {
			return err
		}

		nombre := prompt.Nombre("Introduce el nombre: ")
		edad := prompt.Edad("Introduce la edad: ")
		ciudad := prompt.Ciudad("Introduce la ciudad: ")

		created, err := app.Fichas.Create(cmd.Context(), nombre, edad, ciudad, false)
		if errors.Is(err, ficha.ErrDuplicateName) {
			color.Yellow("Ya existe una ficha con ese nombre.")
			if !prompt.Confirm("¿Crear otra igualmente?") {
				color.Yellow("Cancelado.")
				return nil
			}
			created, err = app.Fichas.Create(cmd.Context(), nombre, edad, ciudad, true)
		}
		if err != nil {
			return err
		}

		color.Green("Ficha creada: %s / %d / %s", created.Nombre, created.Edad, created.Ciudad)
		return nil
	},
}
