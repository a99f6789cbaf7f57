// Package user contains the CLI commands for account administration. Every
// command checks the admin role against the local session first.
package user

import (
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/types"
	"gestorfichas/internal/app/cli"
)

// UserCmd is the parent of every account operation.
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Gestión de usuarios",
	Long:  `Listar, crear y borrar cuentas, cambiar roles y contraseñas.`,
}

func appFrom(cmd *cobra.Command) *cli.App {
	return cmd.Context().Value(types.ClientAppKey).(*cli.App)
}
