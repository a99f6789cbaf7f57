package user

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar las cuentas de usuario",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := appFrom(cmd)
		if _, err := app.RequireAdmin(); err != nil {
			return err
		}

		users := app.Users.List(cmd.Context())
		if len(users) == 0 {
			color.Yellow("No hay usuarios registrados.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USUARIO\tROL\tCREADO")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.Username, u.Role, u.CreatedAt.Format("2006/01/02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}
