package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
	"gestorfichas/cmd/cli/cmd/types"
	"gestorfichas/internal/app/cli"
	"gestorfichas/internal/domain/user"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Iniciar sesión",
	Long: `Autentica contra el almacén de usuarios y guarda la sesión local
para los siguientes comandos.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*cli.App)

		username := prompt.Line("Usuario: ")
		password, err := prompt.Password("Contraseña: ")
		if err != nil {
			return err
		}

		sess, err := app.Login(cmd.Context(), username, password)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				return errors.New("usuario o contraseña incorrectos")
			}
			return err
		}

		color.Green("Sesión iniciada como %s (%s).", sess.Usuario, sess.Rol)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cerrar la sesión actual",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*cli.App)

		username, err := app.Logout(cmd.Context())
		if err != nil {
			if errors.Is(err, cli.ErrNoSession) {
				color.Yellow("No hay ninguna sesión activa.")
				return nil
			}
			return err
		}

		color.Green("Sesión cerrada para %s.", username)
		return nil
	},
}
