package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		attrs    []string
		want     error
	}{
		{"ok", "violet-lantern-42", []string{"alice", "Alice", "Smith", "alice@example.com"}, nil},
		{"too short", "xk3-q", nil, errPasswordTooShort},
		{"numeric", "8675309123", nil, errPasswordNumeric},
		{"common", "password123", nil, errPasswordCommon},
		{"common any case", "PassWord1", nil, errPasswordCommon},
		{"contains username", "zz-alice-zz", []string{"alice"}, errPasswordTooSimilar},
		{"inside email", "wonderland", []string{"bob", "", "", "bob@wonderland.io"}, errPasswordTooSimilar},
		{"short attrs ignored", "violet-lantern", []string{"vi", ""}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatePassword(tc.password, tc.attrs...))
		})
	}
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/posts/create", SafeNext("/posts/create"))
	assert.Equal(t, "/", SafeNext(""))
	assert.Equal(t, "/", SafeNext("https://evil.example/"))
	assert.Equal(t, "/", SafeNext("//evil.example/"))
}

func TestErrorsKeepFirstMessage(t *testing.T) {
	errs := Errors{}
	assert.False(t, errs.Any())
	errs.Add("text", "first")
	errs.Add("text", "second")
	errs.Merge(Errors{"post": "missing", "text": "third"})

	assert.True(t, errs.Any())
	assert.True(t, errs.Has("post"))
	assert.Equal(t, "first", errs.Get("text"))
	assert.Equal(t, "", errs.Get("title"))
}
