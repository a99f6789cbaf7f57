package user

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <usuario>",
	Short: "Borrar una cuenta de usuario",
	Long:  `Borra la cuenta tras pedir confirmación. No puedes borrar tu propia cuenta.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		sess, err := app.RequireAdmin()
		if err != nil {
			return err
		}

		if !prompt.Confirm("¿Borrar la cuenta \"" + args[0] + "\"?") {
			color.Yellow("Cancelado.")
			return nil
		}

		if err := app.Users.Delete(cmd.Context(), args[0], sess.Usuario); err != nil {
			return err
		}

		color.Green("Usuario %q borrado.", args[0])
		return nil
	},
}
