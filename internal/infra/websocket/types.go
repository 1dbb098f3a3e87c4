package websocket

// Message envelope sent to feed subscribers
type Message struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

const (
	TypeFeedStarted = "feed.started"
	TypeFeedLine    = "feed.line"
	TypeFeedDone    = "feed.done"
	TypeFeedError   = "feed.error"
)
