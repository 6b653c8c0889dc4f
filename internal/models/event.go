package models

// SubscriptionEvent is the record published to Kafka for every successful
// subscribe or unsubscribe action.
type SubscriptionEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the action completed.
	UserID    string `json:"user_id"`   // UserID is the user who performed the action.
	FundID    string `json:"fund_id"`   // FundID is the fund the action targeted.
	Action    string `json:"action"`    // Action is "subscribe" or "unsubscribe".
}
