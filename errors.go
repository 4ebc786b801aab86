package dirserve

import (
	"fmt"
	"net/http"
)

// RequestError is a request-terminating failure that carries the HTTP status
// to answer with. The http package's error boundary sends the status with an
// empty body and logs the wrapped cause; any error that is not a RequestError
// is treated as an unexpected failure and only logged.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// BadRequest reports an HTTP method other than GET or HEAD.
func BadRequest(method string) *RequestError {
	return &RequestError{
		StatusCode: http.StatusBadRequest,
		Err:        fmt.Errorf("unsupported method %q", method),
	}
}

// NotFound reports a request path that does not resolve to an existing entry
// under the serving root.
func NotFound(path string) *RequestError {
	return &RequestError{
		StatusCode: http.StatusNotFound,
		Err:        fmt.Errorf("no such path %q", path),
	}
}

// ListingFailed reports a directory that could not be enumerated while
// building a listing. The failure aborts the whole listing; nothing partial
// is sent.
func ListingFailed(dir string, err error) *RequestError {
	return &RequestError{
		StatusCode: http.StatusInternalServerError,
		Err:        fmt.Errorf("unable to list files from %s: %w", dir, err),
	}
}
