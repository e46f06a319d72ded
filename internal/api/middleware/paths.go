// Package middleware provides Echo middleware for the catalog mirror API.
package middleware

// probePaths are the operational endpoints hit by probes and scrapers.
var probePaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// unmatchedRoute labels requests that matched no registered route, so
// arbitrary paths cannot grow metric cardinality.
const unmatchedRoute = "unmatched"

func isProbe(path string) bool {
	_, ok := probePaths[path]
	return ok
}
