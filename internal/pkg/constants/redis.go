package constants

// Redis key layout for the session store. Every traveller owns at most one
// intent key; the key carries the TTL for the whole intent.
const (
	KeyTravelIntent        = "session:user:%s" // ownerID
	KeyTravelIntentPattern = "session:user:*"
	KeyDailyMatchCounter   = "metrics:matches:daily"
)
