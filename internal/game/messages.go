package game

// MsgPriority controls how a log entry is presented.
type MsgPriority uint8

const (
	MsgInfo MsgPriority = iota
	MsgWarning
	MsgCritical
	MsgDiscovery
)

// Message is a single entry in the ship's log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of notable happenings (milestones,
// events, outcomes) for the presentation layer to surface. The core
// writes to it; it never blocks gameplay.
type MessageLog struct {
	Messages []Message
	maxSize  int
	added    int // total ever added, including evicted entries
}

// NewMessageLog creates a log keeping the most recent maxSize entries.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{Messages: make([]Message, 0, maxSize), maxSize: maxSize}
}

// Add appends a message, evicting the oldest if full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	msg := Message{Text: text, Priority: priority}
	if len(l.Messages) >= l.maxSize {
		copy(l.Messages, l.Messages[1:])
		l.Messages[len(l.Messages)-1] = msg
	} else {
		l.Messages = append(l.Messages, msg)
	}
	l.added++
}

// TotalAdded returns how many messages were ever added, counting
// evicted ones. Incremental readers use it as a cursor with Since.
func (l *MessageLog) TotalAdded() int { return l.added }

// Since returns the messages added after the cursor, where the cursor
// is an earlier TotalAdded value. Messages already evicted by the time
// of the call are gone.
func (l *MessageLog) Since(cursor int) []Message {
	n := l.added - cursor
	if n <= 0 {
		return nil
	}
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}
