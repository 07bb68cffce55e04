// Package intake validates resumes before they are offered for screening.
package intake

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/notify"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

// Intake holds the currently accepted attachment.
type Intake struct {
	current *Attachment
	sink    notify.Sink
	logger  *zap.Logger
}

func New(sink notify.Sink, l *zap.Logger) *Intake {
	return &Intake{
		sink:   sink,
		logger: logger.OrNop(l),
	}
}

// Accept validates the candidate file. The type is checked before the size.
// On failure the previously accepted attachment stays in place.
func (in *Intake) Accept(candidate RawFile) (*Attachment, error) {
	fields := logger.FileFields(candidate.Name, candidate.MIMEType, candidate.Size)

	if candidate.MIMEType != MIMETypePDF && candidate.MIMEType != MIMETypeDOCX {
		in.logger.Debug("rejecting file", append(fields, zap.String("reason", "type"))...)
		in.notify(notify.Notification{
			Title:       "Invalid file type",
			Description: "Please upload a PDF or DOCX file.",
			Severity:    notify.Destructive,
		})
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, candidate.MIMEType)
	}

	if candidate.Size > MaxFileSize {
		in.logger.Debug("rejecting file", append(fields, zap.String("reason", "size"))...)
		in.notify(notify.Notification{
			Title:       "File too large",
			Description: "Please upload a file smaller than 10MB.",
			Severity:    notify.Destructive,
		})
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, candidate.Size, MaxFileSize)
	}

	attachment := &Attachment{
		name:     candidate.Name,
		size:     candidate.Size,
		mimeType: candidate.MIMEType,
		open:     candidate.open,
	}
	in.current = attachment

	in.logger.Info("resume accepted", fields...)
	in.notify(notify.Notification{
		Title:       "File uploaded successfully",
		Description: fmt.Sprintf("%s is ready for screening.", candidate.Name),
		Severity:    notify.Info,
	})

	return attachment, nil
}

// Current returns the accepted attachment or nil.
func (in *Intake) Current() *Attachment {
	return in.current
}

func (in *Intake) notify(n notify.Notification) {
	if in.sink != nil {
		in.sink.Notify(n)
	}
}
