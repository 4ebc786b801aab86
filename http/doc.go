// Package http implements the request pipeline for dirserve.
//
// Every request flows through a single per-request pipeline:
//
//	method validation -> path resolution -> listing or file dispatch
//
// GET and HEAD are the only supported methods; anything else is answered with
// 400 before any filesystem access. The request path is resolved inside an
// os.Root sandbox, so paths that would escape the serving root fail
// resolution and are answered with 404.
//
// Directories are answered with a recursive plain-text listing, one
// root-relative file path per line. Files are answered with their bytes, a
// Content-Type from the extension table, and a strong SHA-256 ETag; a request
// whose If-None-Match exactly equals the current ETag gets 304 with no body.
// HEAD mirrors GET's status and headers without a body.
//
// # Error Boundary
//
// Handlers in this package return errors rather than writing them.
// ErrorBoundary composes a HandlerFunc into an http.Handler that maps
// structured request errors to bare status responses, logs everything, and
// releases the request body on every exit path:
//
//	r.Handle("/*", http.ErrorBoundary(h.serve))
//
// Unexpected failures after headers were sent are logged only; the client may
// observe a truncated response, which is the documented best-effort behavior
// for mid-stream I/O errors.
package http
