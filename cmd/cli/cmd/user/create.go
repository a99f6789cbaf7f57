package user

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
	"gestorfichas/internal/domain/user"
)

var createRole string

var CreateCmd = &cobra.Command{
	Use:   "create <usuario>",
	Short: "Crear una cuenta de usuario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireAdmin(); err != nil {
			return err
		}

		password, err := prompt.Password("Contraseña: ")
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

		created, err := app.Users.Register(cmd.Context(), args[0], password, createRole)
		if err != nil {
			return err
		}

		color.Green("Usuario %q creado con rol %s.", created.Username, created.Role)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createRole, "role", user.RoleEditor, "rol de la cuenta (admin|editor)")
}
