package session

import "time"

// DefaultNoticeTTL is how long a notification stays visible.
const DefaultNoticeTTL = 3 * time.Second

// Level grades a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// Notice is a short-lived, leveled message shown in the status area.
type Notice struct {
	Level Level
	Text  string
	At    time.Time
}

// Notices holds a session's pending notifications. Entries share a fixed
// TTL; Active prunes expired ones as it reads so the queue stays small.
type Notices struct {
	items []Notice
	ttl   time.Duration
}

// NewNotices creates an empty queue with the default TTL.
func NewNotices() *Notices {
	return &Notices{ttl: DefaultNoticeTTL}
}

// Add appends a notification stamped now.
func (n *Notices) Add(level Level, text string) {
	n.AddAt(time.Now(), level, text)
}

// AddAt is Add with an explicit timestamp.
func (n *Notices) AddAt(at time.Time, level Level, text string) {
	n.items = append(n.items, Notice{Level: level, Text: text, At: at})
}

// Info appends an info-level notification.
func (n *Notices) Info(text string) {
	n.Add(LevelInfo, text)
}

// Success appends a success-level notification.
func (n *Notices) Success(text string) {
	n.Add(LevelSuccess, text)
}

// Warning appends a warning-level notification.
func (n *Notices) Warning(text string) {
	n.Add(LevelWarning, text)
}

// Error appends an error-level notification.
func (n *Notices) Error(text string) {
	n.Add(LevelError, text)
}

// Active drops expired notifications and returns the live ones, oldest
// first. The returned slice aliases the queue; callers must not mutate it.
func (n *Notices) Active(now time.Time) []Notice {
	var live []Notice
	for _, item := range n.items {
		if now.Sub(item.At) < n.ttl {
			live = append(live, item)
		}
	}
	n.items = live
	return live
}
