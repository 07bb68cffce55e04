// Package clipboard copies candidate details to the system clipboard.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/notify"
)

// Writer puts text on a clipboard.
type Writer func(text string) error

// System writes to the OS clipboard.
var System Writer = clipboard.WriteAll

type Copier struct {
	write  Writer
	sink   notify.Sink
	logger *zap.Logger
}

func New(write Writer, sink notify.Sink, l *zap.Logger) *Copier {
	if write == nil {
		write = System
	}

	return &Copier{
		write:  write,
		sink:   sink,
		logger: logger.OrNop(l),
	}
}

// Copy puts the email on the clipboard and reports the outcome to the sink.
func (c *Copier) Copy(email string) error {
	err := c.write(strings.TrimSpace(email))
	if err != nil {
		c.logger.Warn("copy to clipboard failed", zap.Error(err))
		c.notify(notify.Notification{
			Title:       "Copy failed",
			Description: "Unable to copy email to clipboard.",
			Severity:    notify.Destructive,
		})
		return err
	}

	c.notify(notify.Notification{
		Title:       "Email copied",
		Description: "Email address copied to clipboard.",
		Severity:    notify.Info,
	})
	return nil
}

func (c *Copier) notify(n notify.Notification) {
	if c.sink != nil {
		c.sink.Notify(n)
	}
}
