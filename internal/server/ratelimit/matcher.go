package ratelimit

import "strings"

// unlimited marks an endpoint that bypasses rate limiting entirely.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves the budget for a request path and method. Exact path
// matches win over prefix matches (configs whose path ends in "/", covering
// routes like "/jobs/{id}"). Returns nil when no configured endpoint matches,
// in which case the caller falls back to the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Liveness checks must never be throttled
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
