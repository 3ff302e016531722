package constants

import (
	"fmt"
	"time"
)

// Redis Key Configuration
// This file centralizes all Redis keys and TTL values for the Holidaze backend
// Pattern: holidaze:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute // 5 minutes - for venue listings
	TTL_DYNAMIC_QUICK = 2 * time.Minute // 2 minutes - for venue detail with bookings
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "holidaze"
)

// ================== SESSION MODULE ==================

const (
	KEY_SESSION  = CACHE_PREFIX + ":session:"  // + visitor-id
	KEY_CATALOG  = CACHE_PREFIX + ":catalog:"  // + visitor-id
	KEY_INFLIGHT = CACHE_PREFIX + ":inflight:" // + visitor-id:action
)

// ================== VENUES MODULE ==================

const (
	CACHE_KEY_VENUES_LIST   = CACHE_PREFIX + ":venues:list"        // + :page:X:limit:Y
	CACHE_KEY_VENUES_SEARCH = CACHE_PREFIX + ":venues:search"      // + :query:X:page:Y:limit:Z
	CACHE_KEY_VENUE_DETAIL  = CACHE_PREFIX + ":venues:detail:id:"  // + venue-id
	CACHE_KEY_OWNER_VENUES  = CACHE_PREFIX + ":venues:owner:name:" // + profile-name
)

const (
	TTL_VENUES_LIST   = TTL_DYNAMIC_SHORT
	TTL_VENUES_SEARCH = TTL_DYNAMIC_SHORT
	TTL_VENUE_DETAIL  = TTL_DYNAMIC_QUICK
	TTL_OWNER_VENUES  = TTL_DYNAMIC_QUICK
)

// ================== PROFILES MODULE ==================

const (
	CACHE_KEY_PROFILE_BOOKINGS = CACHE_PREFIX + ":profiles:bookings:name:" // + profile-name
)

const (
	TTL_PROFILE_BOOKINGS = TTL_DYNAMIC_QUICK
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_VENUE_LISTS = CACHE_PREFIX + ":venues:list*"
	PATTERN_INVALIDATE_SEARCHES    = CACHE_PREFIX + ":venues:search*"
)

// ================== KEY BUILDERS ==================

func BuildVenueListKey(page, limit int) string {
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_VENUES_LIST, page, limit)
}

func BuildVenueSearchKey(query string, page, limit int) string {
	return fmt.Sprintf("%s:query:%s:page:%d:limit:%d", CACHE_KEY_VENUES_SEARCH, query, page, limit)
}

func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}

func BuildOwnerVenuesKey(name string) string {
	return CACHE_KEY_OWNER_VENUES + name
}

func BuildProfileBookingsKey(name string) string {
	return CACHE_KEY_PROFILE_BOOKINGS + name
}

func BuildSessionKey(visitorID string) string {
	return KEY_SESSION + visitorID
}

func BuildCatalogKey(visitorID string) string {
	return KEY_CATALOG + visitorID
}

func BuildInFlightKey(visitorID, action string) string {
	return KEY_INFLIGHT + visitorID + ":" + action
}
