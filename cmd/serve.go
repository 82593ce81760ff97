package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/routes"
	"github.com/cppla/blogsite/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	gdb, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	r, err := routes.SetupRouter(gdb, utils.NewStore(cfg))
	if err != nil {
		return err
	}

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	return utils.GraceServer(":"+cfg.AppPort, r)
}
