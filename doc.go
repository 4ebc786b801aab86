// Package dirserve provides a small HTTP file server that serves file bytes
// and recursive plain-text directory listings from a single root directory.
//
// The server supports GET and HEAD only. Requesting a directory returns one
// line per regular file beneath it, with paths relative to the serving root
// and forward-slash separators. Requesting a file returns its bytes together
// with a strong content ETag, and honors If-None-Match for conditional GETs.
//
// # Key Components
//
//   - dirtree: recursive directory snapshots and their text rendering
//   - http: request pipeline, error boundary, and router
//   - config: layered configuration (flags > env > file > defaults)
//
// Serving is sandboxed with os.Root, so request paths can never resolve to
// files outside the configured root directory.
//
// See the http package for the request pipeline and the cmd/dirserve package
// for the CLI entry point.
package dirserve
