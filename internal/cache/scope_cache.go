package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spec-kit/judiciary-service/internal/persistence"
	"github.com/spec-kit/judiciary-service/internal/policy"
)

// ScopeCache stores resolved visibility scopes in Redis so list endpoints do
// not re-query subordinate courts on every request. Entries expire after a
// TTL and are invalidated whenever a court under the circuit changes. All
// operations degrade to no-ops when Redis is unavailable.
type ScopeCache struct {
	redis *persistence.Redis
	ttl   time.Duration
}

// NewScopeCache constructs the cache.
func NewScopeCache(redis *persistence.Redis, ttl time.Duration) *ScopeCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ScopeCache{redis: redis, ttl: ttl}
}

type cachedScope struct {
	Unrestricted bool     `json:"unrestricted"`
	CourtIDs     []string `json:"court_ids"`
}

func scopeKey(caller policy.Caller) string {
	courtID := ""
	if caller.CourtID != nil {
		courtID = *caller.CourtID
	}
	return "court_scope:" + string(caller.Role) + ":" + courtID
}

// Get returns the cached scope for the caller, if present.
func (c *ScopeCache) Get(ctx context.Context, caller policy.Caller) (policy.Scope, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return policy.Scope{}, false
	}
	raw, err := c.redis.Client.Get(ctx, scopeKey(caller)).Bytes()
	if err != nil {
		return policy.Scope{}, false
	}
	var cached cachedScope
	if err := json.Unmarshal(raw, &cached); err != nil {
		return policy.Scope{}, false
	}
	return policy.Scope{Unrestricted: cached.Unrestricted, CourtIDs: cached.CourtIDs}, true
}

// Set stores the scope for the caller.
func (c *ScopeCache) Set(ctx context.Context, caller policy.Caller, scope policy.Scope) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(cachedScope{Unrestricted: scope.Unrestricted, CourtIDs: scope.CourtIDs})
	if err != nil {
		return
	}
	_ = c.redis.Client.Set(ctx, scopeKey(caller), raw, c.ttl).Err()
}

// InvalidateCircuit drops the cached scope of the circuit court's users.
// Magisterial scopes are a single fixed court id and never go stale.
func (c *ScopeCache) InvalidateCircuit(ctx context.Context, circuitCourtID string) {
	if c == nil || c.redis == nil || c.redis.Client == nil || circuitCourtID == "" {
		return
	}
	_ = c.redis.Client.Del(ctx, "court_scope:circuit:"+circuitCourtID).Err()
}
