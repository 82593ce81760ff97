package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/models"
	"github.com/cppla/blogsite/testutil"
	"github.com/cppla/blogsite/utils"
)

// useFileDatabase points the loaded configuration at a sqlite file so separate
// command runs see the same data.
func useFileDatabase(t *testing.T) {
	t.Helper()
	cfg := testutil.Setup(t)
	cfg.DatabaseURI = filepath.Join(t.TempDir(), "blogsite.db")
	config.Set(cfg)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMigrateAndCreateSuperuser(t *testing.T) {
	useFileDatabase(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrated")

	out, err = run(t, "createsuperuser", "--username", "root", "--email", "root@example.com", "--password", "violet-lantern-42")
	require.NoError(t, err)
	assert.Contains(t, out, "Superuser root created.")

	gdb, closeDB, err := openDatabase()
	require.NoError(t, err)
	defer closeDB()
	var u models.User
	require.NoError(t, gdb.Where("username = ?", "root").First(&u).Error)
	assert.True(t, u.IsSuperuser)
	assert.True(t, u.IsStaff)

	_, err = run(t, "createsuperuser", "--username", "weak", "--password", "12345678")
	assert.Error(t, err)
}

func TestDeleteCommandAppliesPolicy(t *testing.T) {
	useFileDatabase(t)

	gdb, closeDB, err := openDatabase()
	require.NoError(t, err)
	alice := testutil.CreateUser(t, gdb, "alice")
	blog := testutil.CreateBlog(t, gdb, alice, "Notes")
	post := testutil.CreatePost(t, gdb, blog, alice, "Hello", time.Time{})
	testutil.CreateComment(t, gdb, post, alice, "hi")
	closeDB()

	store := utils.NewMemoryStore()
	store.Set(context.Background(), utils.IndexStatsKey, []byte(`{"NumBlogs":1}`), time.Minute)
	prev := newStore
	newStore = func(config.AppConfig) utils.Store { return store }
	t.Cleanup(func() { newStore = prev })

	out, err := run(t, "delete", "blog", strconv.FormatUint(uint64(blog.ID), 10))
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted blog")
	_, cached := store.Get(context.Background(), utils.IndexStatsKey)
	assert.False(t, cached, "index stats must be recomputed after a delete")

	gdb, closeDB, err = openDatabase()
	require.NoError(t, err)
	defer closeDB()
	var posts, comments int64
	require.NoError(t, gdb.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, gdb.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)

	_, err = run(t, "delete", "blog", "abc")
	assert.Error(t, err)
	_, err = run(t, "delete", "widget", "1")
	assert.Error(t, err)
	_, err = run(t, "delete", "post", "999")
	assert.Error(t, err)
}
