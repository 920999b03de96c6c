package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched is the label used for paths that match no known route.
const Unmatched = "unmatched"

var articleIDPattern = regexp.MustCompile(`^/articles/\d+$`)

// staticPaths are routes without parameters, reported as is.
var staticPaths = map[string]struct{}{
	"/":         {},
	"/articles": {},
	"/health":   {},
	"/ready":    {},
	"/live":     {},
	"/metrics":  {},
}

// NormalizePath maps a request path to a low cardinality label for metrics.
// Article ids collapse to /articles/:id and anything unknown (including
// routing misses such as /articles/abc) collapses to Unmatched.
//
// Query strings and trailing slashes are ignored:
//
//	NormalizePath("/articles/123?x=1")  // "/articles/:id"
//	NormalizePath("/articles/")         // "/articles"
//	NormalizePath("/articles/abc")      // "unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}
	if articleIDPattern.MatchString(path) {
		return "/articles/:id"
	}
	if strings.HasPrefix(path, "/swagger/") {
		return "/swagger/*"
	}
	return Unmatched
}
