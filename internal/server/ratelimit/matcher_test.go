package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/match", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10, Cost: 2},
		{Path: "/jobs/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
	}

	// Exact path+method match
	config := MatchEndpoint("/match", "POST", configs)
	if config == nil || config.Cost != 2 {
		t.Errorf("Expected /match POST to resolve to the cost-2 config, got %+v", config)
	}

	// Same path, different method falls through to the default
	if config := MatchEndpoint("/match", "GET", configs); config != nil {
		t.Errorf("Expected /match GET to have no endpoint config, got %+v", config)
	}

	// Prefix match covers parameterized routes
	config = MatchEndpoint("/jobs/backend-1", "PUT", configs)
	if config == nil || config.Path != "/jobs/" {
		t.Errorf("Expected /jobs/backend-1 PUT to match the /jobs/ prefix, got %+v", config)
	}

	// Health checks are never throttled
	config = MatchEndpoint("/health", "GET", configs)
	if config == nil || config.Limit != 0 {
		t.Errorf("Expected /health GET to be unlimited, got %+v", config)
	}
}
