// File: utils/constants.go
package utils

import "time"

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the time-to-live for role cache entries.
const RoleCacheTTL = 10 * time.Minute
