package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gestorfichas/cmd/cli/cmd/types"
	"gestorfichas/internal/app/cli"
	"gestorfichas/internal/config"
	"gestorfichas/internal/logger"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "gestorfichas",
	Short: "Gestor de fichas - administración de usuarios y fichas",
	Long: `Gestor de fichas es la herramienta de línea de comandos para
administrar las fichas de personas y las cuentas de usuario.

Los datos se guardan en archivos JSON planos dentro del directorio de
datos. Inicia sesión con "gestorfichas login" antes de usar el resto de
comandos.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	log := logger.New(cfg.Env)

	app, err := cli.New(cfg, log)
	if err != nil {
		return err
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directorio de datos (por defecto: data)")
}
