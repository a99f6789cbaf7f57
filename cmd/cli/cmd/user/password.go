package user

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
)

var PasswordCmd = &cobra.Command{
	Use:   "password <usuario>",
	Short: "Cambiar la contraseña de una cuenta",
	Long: `Con tu propia cuenta pide la contraseña actual; con otra cuenta
requiere el rol de administrador y la sobreescribe directamente.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		sess, err := app.RequireSession()
		if err != nil {
			return err
		}

		target := args[0]
		own := target == sess.Usuario

		var current string
		if own {
			current, err = prompt.Password("Contraseña actual: ")
			if err != nil {
				return err
			}
		} else if _, err := app.RequireAdmin(); err != nil {
			return err
		}

		password, err := prompt.Password("Contraseña nueva: ")
		if err != nil {
			return err
		}
		confirm, err := prompt.Password("Repite la contraseña: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("las contraseñas no coinciden")
		}

		if own {
			err = app.Users.ChangeOwnPassword(cmd.Context(), target, current, password)
		} else {
			err = app.Users.AdminSetPassword(cmd.Context(), target, password)
		}
		if err != nil {
			return err
		}

		color.Green("Contraseña de %q actualizada.", target)
		return nil
	},
}
