package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: tixly:{module}:{operation}:{identifier}:{params?}

const (
	CACHE_PREFIX = "tixly"
)

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // event details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // event listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // search results
	TTL_DYNAMIC_MEDIUM     = 10 * time.Minute // dashboards and stats
)

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENTS_LIST   = CACHE_PREFIX + ":events:list"         // + :page:X:limit:Y:...
	CACHE_KEY_EVENTS_SEARCH = CACHE_PREFIX + ":events:search"       // + :query:X:page:Y
	CACHE_KEY_EVENT_DETAIL  = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
)

const (
	TTL_EVENT_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_EVENT_SEARCH = TTL_SEMI_STATIC_QUICK
	TTL_EVENT_DETAIL = TTL_SEMI_STATIC_MEDIUM
)

// ================== ADMIN MODULE ==================

const (
	CACHE_KEY_ADMIN_DASHBOARD = CACHE_PREFIX + ":admin:dashboard"
	CACHE_KEY_ADMIN_ANALYTICS = CACHE_PREFIX + ":admin:analytics"
)

const (
	TTL_ADMIN_DASHBOARD = TTL_DYNAMIC_MEDIUM
	TTL_ADMIN_ANALYTICS = TTL_DYNAMIC_MEDIUM
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_EVENTS_ALL = CACHE_PREFIX + ":events:*"
	PATTERN_INVALIDATE_ADMIN_ALL  = CACHE_PREFIX + ":admin:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

func BuildEventListKey(page, limit int, category, location, status, vendorID string) string {
	return fmt.Sprintf("%s:page:%d:limit:%d:category:%s:location:%s:status:%s:vendor:%s",
		CACHE_KEY_EVENTS_LIST, page, limit, category, location, status, vendorID)
}

func BuildEventSearchKey(query string, page, limit int) string {
	return fmt.Sprintf("%s:query:%s:page:%d:limit:%d", CACHE_KEY_EVENTS_SEARCH, query, page, limit)
}
