package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/repository"
	"github.com/cppla/blogsite/utils"
)

var deleteCmd = &cobra.Command{
	Use:   "delete {user|blog|post|comment} <id>",
	Short: "Delete a record, applying the deletion policy",
	Long: `Delete a record by id.

Deleting a user keeps their blogs, posts and comments but clears the owner or
author. Deleting a blog removes its posts, and deleting a post removes its comments.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"user", "blog", "post", "comment"},
	RunE:      runDelete,
}

// newStore is replaced in tests to observe cache invalidation.
var newStore = utils.NewStore

func runDelete(cmd *cobra.Command, args []string) error {
	kind := args[0]
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil || id == 0 {
		return fmt.Errorf("invalid id %q", args[1])
	}

	gdb, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	repo := repository.New(gdb)
	var del func(context.Context, uint) error
	switch kind {
	case "user":
		del = repo.DeleteUser
	case "blog":
		del = repo.DeleteBlog
	case "post":
		del = repo.DeletePost
	case "comment":
		del = repo.DeleteComment
	default:
		return fmt.Errorf("unknown record type %q", kind)
	}
	if err := del(cmd.Context(), uint(id)); err != nil {
		return err
	}
	newStore(config.Get()).InvalidateByPrefix(cmd.Context(), utils.IndexStatsKey)
	utils.Sugar.Infof("deleted %s id=%d", kind, id)
	cmd.Printf("Deleted %s %d.\n", kind, id)
	return nil
}
