package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/prompt"
	"gestorfichas/cmd/cli/cmd/types"
	"gestorfichas/internal/app/cli"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Crear el administrador inicial",
	Long: `Crea la primera cuenta de administrador cuando todavía no existe
ningún usuario. Con usuarios ya registrados no hace nada.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*cli.App)

		username := prompt.Line("Usuario administrador: ")
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

		admin, err := app.Users.BootstrapAdminIfEmpty(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		if admin == nil {
			color.Yellow("Ya existen usuarios, no se ha creado nada.")
			return nil
		}

		color.Green("Administrador %q creado.", admin.Username)
		return nil
	},
}
