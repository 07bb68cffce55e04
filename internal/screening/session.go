// Package screening submits a resume and a job description to the scoring
// service and tracks the lifecycle of that request.
package screening

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/intake"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/notify"
)

const defaultFailureMessage = "Screening failed"

var (
	errNoResponse = errors.New("screener returned no response")

	ErrMissingInput = errors.New("resume and job description are required")
	ErrInProgress   = errors.New("screening is already in progress")
)

// Status is the phase of the request lifecycle.
type Status int

const (
	Idle Status = iota
	Submitting
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of the request lifecycle. Result is set only when
// Status is Succeeded, Message only when it is Failed.
type State struct {
	Status  Status
	Result  *Result
	Message string
}

// FailureKind separates failures where no usable answer arrived from
// answers in which the service declined.
type FailureKind int

const (
	TransportFailure FailureKind = iota
	ServiceRejection
)

func (k FailureKind) String() string {
	if k == ServiceRejection {
		return "service_rejection"
	}
	return "transport_failure"
}

// Failure is returned by Submit after the session moved to Failed.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error { return f.Err }

type Input struct {
	Attachment     *intake.Attachment
	JobDescription string
}

// Validate checks that both parts of the submission are present.
func (in Input) Validate() error {
	if in.Attachment == nil || strings.TrimSpace(in.JobDescription) == "" {
		return ErrMissingInput
	}
	return nil
}

// Screener is the network side of a submission.
type Screener interface {
	Screen(ctx context.Context, attachment *intake.Attachment, jobDescription string) (*Response, error)
}

// Session owns the single request state of an interactive screening.
type Session struct {
	mu    sync.Mutex
	state State

	screener Screener
	sink     notify.Sink
	logger   *zap.Logger
}

func NewSession(screener Screener, sink notify.Sink, l *zap.Logger) *Session {
	return &Session{
		screener: screener,
		sink:     sink,
		logger:   logger.OrNop(l),
	}
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CanSubmit reports whether Submit would start a request for this input.
func (s *Session) CanSubmit(in Input) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return in.Validate() == nil && s.state.Status != Submitting
}

// Submit runs one screening request to completion. Precondition failures
// return ErrMissingInput or ErrInProgress and leave the state untouched.
// Otherwise the session ends in Succeeded (nil error) or Failed (*Failure).
func (s *Session) Submit(ctx context.Context, in Input) error {
	if err := s.begin(in); err != nil {
		s.logger.Debug("submission rejected", zap.Error(err))
		s.notify(preconditionNotification(err))
		return err
	}

	s.logger.Info("submitting resume for screening",
		append(logger.FileFields(in.Attachment.Name(), in.Attachment.MIMEType(), in.Attachment.Size()),
			zap.String("job_description", logger.TruncateForLog(in.JobDescription, 80)),
		)...,
	)

	resp, err := s.screener.Screen(ctx, in.Attachment, in.JobDescription)
	if err != nil {
		return s.fail(&Failure{Kind: TransportFailure, Message: transportMessage(err), Err: err})
	}

	if resp == nil {
		return s.fail(&Failure{Kind: TransportFailure, Message: defaultFailureMessage, Err: errNoResponse})
	}

	if !resp.Success || resp.Data == nil {
		message := strings.TrimSpace(resp.Error)
		if message == "" {
			message = defaultFailureMessage
		}
		return s.fail(&Failure{Kind: ServiceRejection, Message: message})
	}

	result, err := decodeResult(resp.Data)
	if err != nil {
		return s.fail(&Failure{Kind: TransportFailure, Message: transportMessage(err), Err: err})
	}

	s.finish(State{Status: Succeeded, Result: result})

	s.logger.Info("screening complete",
		zap.String("candidate_email", result.CandidateEmail),
		zap.String("experience_level", result.ExperienceLevel),
		zap.Int("skill_match", result.SkillMatchPercent),
		zap.String("decision", string(result.Decision)),
	)
	s.notify(notify.Notification{
		Title:       "Screening complete",
		Description: "Check out the results below.",
		Severity:    notify.Info,
	})

	return nil
}

func (s *Session) begin(in Input) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status == Submitting {
		return ErrInProgress
	}

	if err := in.Validate(); err != nil {
		return err
	}

	s.state = State{Status: Submitting}
	return nil
}

func (s *Session) finish(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = next
}

func (s *Session) fail(f *Failure) error {
	s.finish(State{Status: Failed, Message: f.Message})

	s.logger.Warn("screening failed",
		zap.String("kind", f.Kind.String()),
		zap.String("message", f.Message),
		zap.Error(f.Err),
	)
	s.notify(notify.Notification{
		Title:       "Screening failed",
		Description: f.Message,
		Severity:    notify.Destructive,
	})

	return f
}

func (s *Session) notify(n notify.Notification) {
	if s.sink != nil {
		s.sink.Notify(n)
	}
}

func transportMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return defaultFailureMessage
	}
	return err.Error()
}

func preconditionNotification(err error) notify.Notification {
	if errors.Is(err, ErrInProgress) {
		return notify.Notification{
			Title:       "Screening in progress",
			Description: "Please wait for the current screening to finish.",
			Severity:    notify.Info,
		}
	}

	return notify.Notification{
		Title:       "Missing information",
		Description: "Please upload a resume and provide a job description.",
		Severity:    notify.Info,
	}
}
