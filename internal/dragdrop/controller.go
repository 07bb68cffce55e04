// Package dragdrop turns drag events into resume selections.
package dragdrop

import (
	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/intake"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
)

type State int

const (
	Inactive State = iota
	// Active means a drag is hovering over the drop zone.
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

type EventType int

const (
	Enter EventType = iota
	Over
	Leave
	Drop
)

func (e EventType) String() string {
	switch e {
	case Enter:
		return "enter"
	case Over:
		return "over"
	case Leave:
		return "leave"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

type Event struct {
	Type  EventType
	Files []intake.RawFile
}

// Acceptor validates a dropped file. *intake.Intake implements it.
type Acceptor interface {
	Accept(candidate intake.RawFile) (*intake.Attachment, error)
}

// Outcome reports what handling an event did.
type Outcome struct {
	// DefaultPrevented is always true: the platform never opens dropped files itself.
	DefaultPrevented bool
	State            State
	// Forwarded is set when a dropped file was handed to the acceptor.
	Forwarded  bool
	Attachment *intake.Attachment
	Err        error
}

type Controller struct {
	state    State
	acceptor Acceptor
	logger   *zap.Logger
}

func New(acceptor Acceptor, l *zap.Logger) *Controller {
	return &Controller{
		acceptor: acceptor,
		logger:   logger.OrNop(l),
	}
}

func (c *Controller) State() State {
	return c.state
}

// Handle applies one event. Only the first file of a drop is forwarded.
func (c *Controller) Handle(ev Event) Outcome {
	switch ev.Type {
	case Enter, Over:
		if c.state == Inactive {
			c.logger.Debug("drag entered drop zone", zap.Stringer("event", ev.Type))
		}
		c.state = Active
	case Leave:
		c.state = Inactive
	case Drop:
		c.state = Inactive
		return c.drop(ev.Files)
	}

	return Outcome{DefaultPrevented: true, State: c.state}
}

func (c *Controller) drop(files []intake.RawFile) Outcome {
	out := Outcome{DefaultPrevented: true, State: c.state}

	if len(files) == 0 {
		c.logger.Debug("drop without files")
		return out
	}

	if len(files) > 1 {
		ignored := make([]string, 0, len(files)-1)
		for _, f := range files[1:] {
			ignored = append(ignored, f.Name)
		}
		c.logger.Debug("only the first dropped file is used", zap.Strings("ignored", ignored))
	}

	out.Forwarded = true
	if c.acceptor == nil {
		return out
	}

	out.Attachment, out.Err = c.acceptor.Accept(files[0])
	return out
}
