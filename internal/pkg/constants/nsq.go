package constants

// NSQ topics published by the matchmaking service.
const (
	TopicIntentSubmitted  = "intent.submitted"
	TopicMatchesGenerated = "match.generated"
)
