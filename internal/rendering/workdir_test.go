package rendering

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDir_RestoresAfterSuccessAndError(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "inner")
	require.NoError(t, os.Mkdir(target, 0755))
	t.Chdir(base)
	before := getwd(t)

	var inside string
	err := WithDir(target, func() error {
		inside = getwd(t)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, realPath(t, target), realPath(t, inside))
	assert.Equal(t, before, getwd(t))

	sentinel := errors.New("renderer crashed")
	err = WithDir(target, func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, before, getwd(t))
}

func TestWithDir_RestoresAfterPanic(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)
	before := getwd(t)

	assert.Panics(t, func() {
		_ = WithDir(t.TempDir(), func() error {
			panic("boom")
		})
	})
	assert.Equal(t, before, getwd(t))
}

func TestWithDir_MissingDir(t *testing.T) {
	t.Chdir(t.TempDir())
	before := getwd(t)

	called := false
	err := WithDir("does-not-exist", func() error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, before, getwd(t))
}
