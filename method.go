package dirserve

import "strings"

// Method is a supported HTTP method.
type Method string

const (
	MethodGet  Method = "GET"
	MethodHead Method = "HEAD"
)

// ParseMethod recognizes a request method, case-insensitively. The second
// return value reports whether the method is supported; callers must answer
// an unrecognized method with BadRequest before touching the filesystem.
func ParseMethod(s string) (Method, bool) {
	switch strings.ToUpper(s) {
	case "GET":
		return MethodGet, true
	case "HEAD":
		return MethodHead, true
	default:
		return "", false
	}
}
