package dirserve

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
)

// ETag computes a strong validator for the file's current content: an
// uppercase hex SHA-256 digest of its bytes. The file is streamed through the
// hash with io.Copy, so memory stays bounded regardless of file size and
// every byte up to EOF is digested.
//
// ETag is best-effort metadata. Any open or read failure returns "" and the
// caller must treat that as "no validator offered", never as a request
// failure. Digests are recomputed per request; nothing is cached.
func ETag(fsys fs.FS, name string) string {
	f, err := fsys.Open(name)
	if err != nil {
		slog.Debug("etag unavailable", "path", name, "err", err)
		return ""
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		slog.Debug("etag unavailable", "path", name, "err", err)
		return ""
	}

	return fmt.Sprintf("%X", h.Sum(nil))
}
