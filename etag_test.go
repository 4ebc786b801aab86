package dirserve_test

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirserve"
)

var hexDigest = regexp.MustCompile(`^[0-9A-F]{64}$`)

func TestETag_UppercaseHexOfContent(t *testing.T) {
	dir := t.TempDir()
	content := []byte("hello, world\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), content, 0o644))

	tag := dirserve.ETag(os.DirFS(dir), "f.txt")

	assert.Regexp(t, hexDigest, tag)
	assert.Equal(t, fmt.Sprintf("%X", sha256.Sum256(content)), tag)
}

func TestETag_StableAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("same bytes"), 0o644))

	fsys := os.DirFS(dir)
	assert.Equal(t, dirserve.ETag(fsys, "f.txt"), dirserve.ETag(fsys, "f.txt"))
}

func TestETag_SingleByteChangeFlipsDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("version A"), 0o644))

	fsys := os.DirFS(dir)
	before := dirserve.ETag(fsys, "f.txt")

	require.NoError(t, os.WriteFile(path, []byte("version B"), 0o644))
	after := dirserve.ETag(fsys, "f.txt")

	assert.NotEqual(t, before, after)
}

func TestETag_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), nil, 0o644))

	tag := dirserve.ETag(os.DirFS(dir), "empty")

	assert.Equal(t, fmt.Sprintf("%X", sha256.Sum256(nil)), tag)
}

func TestETag_MissingFileIsBestEffort(t *testing.T) {
	tag := dirserve.ETag(os.DirFS(t.TempDir()), "nope.txt")

	assert.Equal(t, "", tag)
}
