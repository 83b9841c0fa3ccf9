package ui

import (
	"fmt"
	"strings"
)

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is one line of transient feedback.
type Notification struct {
	Level Level
	Text  string
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s]: %s", strings.ToUpper(n.Level.String()), n.Text)
}

// Notifications is a newest-first list whose oldest entry expires after ttl
// frames on screen.
type Notifications struct {
	items  []Notification
	ttl    int
	frames int
}

// NewNotifications returns an empty list expiring entries after ttl frames.
func NewNotifications(ttl int) *Notifications {
	if ttl < 1 {
		ttl = 1
	}
	return &Notifications{ttl: ttl}
}

// Add pushes a notification to the front.
func (n *Notifications) Add(level Level, format string, args ...any) {
	if len(n.items) == 0 {
		n.frames = 0
	}
	n.items = append([]Notification{{Level: level, Text: fmt.Sprintf(format, args...)}}, n.items...)
}

// Tick advances the expiry timer by one frame.
func (n *Notifications) Tick() {
	if len(n.items) == 0 {
		return
	}
	n.frames++
	if n.frames > n.ttl {
		n.items = n.items[:len(n.items)-1]
		n.frames = 0
	}
}

// Lines renders the live notifications, newest first.
func (n *Notifications) Lines() []string {
	out := make([]string, len(n.items))
	for i, it := range n.items {
		out[i] = it.String()
	}
	return out
}

// Len returns the number of live notifications.
func (n *Notifications) Len() int { return len(n.items) }
