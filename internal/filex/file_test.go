package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesRelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("preview")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "preview"))
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotResolved)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o660))

	_, err := EnsureDir(path)
	require.Error(t, err)
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, RemoveIfExists(path))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, RemoveIfExists(path))
	require.NoError(t, RemoveIfExists(""))
}

func TestHasExtension(t *testing.T) {
	exts := []string{".pdf", ".png"}

	assert.True(t, HasExtension("passport.PDF", exts))
	assert.True(t, HasExtension("/tmp/scan.png", exts))
	assert.False(t, HasExtension("notes.txt", exts))
	assert.False(t, HasExtension("README", exts))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "visa.pdf", SafeName("../../etc/visa.pdf"))
	assert.Equal(t, "scan.png", SafeName(`C:\docs\scan.png`))
	assert.Equal(t, "document", SafeName(""))
}
