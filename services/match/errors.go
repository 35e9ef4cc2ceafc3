package match

import "errors"

// Sentinel errors for the matchmaking domain. Handlers map these onto HTTP
// statuses; everything else surfaces as an internal error.
var (
	// ErrInvalidIntent marks a submission that failed validation.
	ErrInvalidIntent = errors.New("invalid travel intent")

	// ErrNoActiveIntent means the traveller has no live intent in the
	// session store (never submitted, expired, or deleted).
	ErrNoActiveIntent = errors.New("no active travel intent")

	// ErrStoreUnavailable means the session store could not be reached.
	ErrStoreUnavailable = errors.New("session store unavailable")

	// ErrScoringInvariant marks a broken scoring precondition, such as
	// weights that do not sum to one. Validated input never triggers it.
	ErrScoringInvariant = errors.New("scoring invariant violated")
)
