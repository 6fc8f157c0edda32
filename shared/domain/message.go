package domain

import (
	"time"
)

// Message is a single post inside a thread. Messages are immutable once
// persisted; this service only reads them.
type Message struct {
	Id       MsgId
	AuthorId UserId
	ThreadId ThreadId
	Body     MsgBody
	Created  time.Time
}
