// Package ficha contains the CLI commands for managing fichas.
package ficha

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/types"
	"gestorfichas/internal/app/cli"
	"gestorfichas/internal/domain/ficha"
)

const timeFormat = "2006/01/02 15:04:05"

// FichaCmd is the parent of every ficha operation.
var FichaCmd = &cobra.Command{
	Use:   "ficha",
	Short: "Gestión de fichas",
	Long:  `Crear, listar, buscar, editar y borrar fichas de personas.`,
}

func appFrom(cmd *cobra.Command) *cli.App {
	return cmd.Context().Value(types.ClientAppKey).(*cli.App)
}

func printFichas(fichas []ficha.Ficha) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNOMBRE\tEDAD\tCIUDAD\tCREADA\tMODIFICADA")
	for i, f := range fichas {
		modificada := "-"
		if f.FechaModificacion != nil {
			modificada = f.FechaModificacion.Format(timeFormat)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			i+1, f.Nombre, f.Edad, f.Ciudad,
			f.FechaCreacion.Format(timeFormat), modificada,
		)
	}
	w.Flush()
}
