package session

import "time"

// Store defaults
const (
	DefaultCapacity = 10000
	DefaultTTL      = 24 * time.Hour
)

const (
	LogMsgSessionCreated = "Session created"
	LogMsgSessionEvicted = "Session evicted"
	LogMsgSessionDeleted = "Session deleted"
	LogMsgLocksPruned    = "Pruned orphan session locks"
)
