package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_RelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	got, err := EnsureDir("sessions")
	require.NoError(t, err)

	want := filepath.Join(tmp, "sessions")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureDir_Absolute(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnsureDir_Idempotent(t *testing.T) {
	chdir(t, t.TempDir())

	first, err := EnsureDir("sessions")
	require.NoError(t, err)

	second, err := EnsureDir("sessions")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("sessions", []byte("x"), 0o600))

	_, err := EnsureDir("sessions")
	require.Error(t, err, "should fail when a file exists with the same name")
}
