// Package notify carries user-facing messages out of the screening workflow.
package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
)

// Severity tells the sink how to render a notification.
type Severity int

const (
	Info Severity = iota
	Destructive
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Destructive:
		return "destructive"
	default:
		return "unknown"
	}
}

type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Sink receives every validation rejection, submission success and submission failure.
type Sink interface {
	Notify(n Notification)
}

// LogSink renders notifications through zap.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(l *zap.Logger) *LogSink {
	return &LogSink{logger: logger.OrNop(l)}
}

func (s *LogSink) Notify(n Notification) {
	fields := logger.StringFields("description", n.Description)

	if n.Severity == Destructive {
		s.logger.Warn(n.Title, fields...)
		return
	}

	s.logger.Info(n.Title, fields...)
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications in arrival order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Last returns the most recent notification and false when nothing was recorded.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
