package domain

// Event type constants used for event bus subscriptions, SSE streaming and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeCaseOpened is published when a case is paid for and its spin starts
	EventTypeCaseOpened = "case.opened"

	// EventTypeCaseRevealed is published when a spin's reveal delay elapses
	EventTypeCaseRevealed = "case.revealed"

	// EventTypeItemSold is published when inventory items are sold
	EventTypeItemSold = "item.sold"

	// EventTypeBalanceChanged is published after any balance mutation
	EventTypeBalanceChanged = "balance.changed"
)
