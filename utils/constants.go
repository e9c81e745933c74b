// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis session keys.
const SessionCachePrefix = "loanguard:session:"

// DefaultSessionTTL applies when SESSION_TTL is not positive.
const DefaultSessionTTL = 24 * time.Hour

// SessionCookieName carries the browser's session id.
const SessionCookieName = "loanguard_session"
