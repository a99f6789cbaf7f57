package cmd

import (
	fichaCmd "gestorfichas/cmd/cli/cmd/ficha"
	userCmd "gestorfichas/cmd/cli/cmd/user"
)

func init() {
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(repairIDsCmd)

	rootCmd.AddCommand(fichaCmd.FichaCmd)
	fichaCmd.FichaCmd.AddCommand(fichaCmd.CreateCmd)
	fichaCmd.FichaCmd.AddCommand(fichaCmd.ListCmd)
	fichaCmd.FichaCmd.AddCommand(fichaCmd.SearchCmd)
	fichaCmd.FichaCmd.AddCommand(fichaCmd.EditCmd)
	fichaCmd.FichaCmd.AddCommand(fichaCmd.DeleteCmd)

	rootCmd.AddCommand(userCmd.UserCmd)
	userCmd.UserCmd.AddCommand(userCmd.ListCmd)
	userCmd.UserCmd.AddCommand(userCmd.CreateCmd)
	userCmd.UserCmd.AddCommand(userCmd.DeleteCmd)
	userCmd.UserCmd.AddCommand(userCmd.RoleCmd)
	userCmd.UserCmd.AddCommand(userCmd.PasswordCmd)
}
