package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/forms"
	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

var (
	suUsername string
	suEmail    string
	suPassword string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create the administrative account",
	Long: `Create a staff account with superuser rights. The password may be given with
--password or the BLOGSITE_SUPERUSER_PASSWORD environment variable.`,
	RunE: runCreateSuperuser,
}

func init() {
	createSuperuserCmd.Flags().StringVar(&suUsername, "username", "admin", "account username")
	createSuperuserCmd.Flags().StringVar(&suEmail, "email", "", "account email")
	createSuperuserCmd.Flags().StringVar(&suPassword, "password", "", "account password")
}

func runCreateSuperuser(cmd *cobra.Command, args []string) error {
	password := suPassword
	if password == "" {
		password = os.Getenv("BLOGSITE_SUPERUSER_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("a password is required (--password or BLOGSITE_SUPERUSER_PASSWORD)")
	}
	if err := forms.ValidatePassword(password, suUsername, suEmail); err != nil {
		return err
	}

	gdb, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{
		Username:     suUsername,
		Email:        suEmail,
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  true,
	}
	if err := repository.New(gdb).CreateUser(cmd.Context(), &user); err != nil {
		return err
	}
	newStore(config.Get()).InvalidateByPrefix(cmd.Context(), utils.IndexStatsKey)
	utils.Sugar.Infof("superuser created id=%d username=%s", user.ID, user.Username)
	cmd.Printf("Superuser %s created.\n", user.Username)
	return nil
}
