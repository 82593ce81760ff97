package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cppla/blogsite/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, closeDB, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDB()
		utils.Sugar.Info("schema is up to date")
		cmd.Println("migrated")
		return nil
	},
}
