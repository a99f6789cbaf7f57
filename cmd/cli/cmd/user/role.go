package user

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var RoleCmd = &cobra.Command{
	Use:   "role <usuario> <admin|editor>",
	Short: "Cambiar el rol de una cuenta",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireAdmin(); err != nil {
			return err
		}

		if err := app.Users.ChangeRole(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		color.Green("Rol de %q cambiado a %s.", args[0], args[1])
		return nil
	},
}
