// Package cmd is the blogsite command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/utils"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "blogsite",
	Short: "Multi-user blogging site",
	Long: `blogsite serves a server-rendered blogging site where users keep blogs,
write posts and comment on each other's posts.

Configuration is read from config/config.json (or .yaml), then overridden by
environment variables such as JWT_SECRET, DB_DRIVER and DATABASE_URI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := os.Setenv("CONFIG_FILE", configPath); err != nil {
				return err
			}
		}
		return utils.InitLogger(config.Load())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON or YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createSuperuserCmd)
	rootCmd.AddCommand(deleteCmd)
}

// openDatabase connects with the loaded configuration and brings the schema up to date.
func openDatabase() (*gorm.DB, func(), error) {
	gdb, err := config.OpenDatabase(config.Get())
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	closeFn := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if err := config.Migrate(gdb, models.All()...); err != nil {
		closeFn()
		return nil, nil, err
	}
	return gdb, closeFn, nil
}
