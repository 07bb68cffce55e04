package dragdrop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/intake"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/notify"
)

type recordingAcceptor struct {
	received []intake.RawFile
	err      error
}

func (r *recordingAcceptor) Accept(candidate intake.RawFile) (*intake.Attachment, error) {
	r.received = append(r.received, candidate)
	if r.err != nil {
		return nil, r.err
	}
	return intake.New(nil, nil).Accept(candidate)
}

func pdf(name string) intake.RawFile {
	return intake.FromBytes(name, intake.MIMETypePDF, []byte("%PDF"))
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []EventType
		want   State
	}{
		{name: "enter activates", events: []EventType{Enter}, want: Active},
		{name: "over activates", events: []EventType{Over}, want: Active},
		{name: "enter then over stays active", events: []EventType{Enter, Over, Over}, want: Active},
		{name: "leave deactivates", events: []EventType{Enter, Leave}, want: Inactive},
		{name: "leave while inactive", events: []EventType{Leave}, want: Inactive},
		{name: "drop deactivates", events: []EventType{Enter, Over, Drop}, want: Inactive},
		{name: "drop while inactive", events: []EventType{Drop}, want: Inactive},
		{name: "re-enter after leave", events: []EventType{Enter, Leave, Over}, want: Active},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, nil)
			require.Equal(t, Inactive, c.State())

			for _, ev := range tt.events {
				out := c.Handle(Event{Type: ev})
				assert.True(t, out.DefaultPrevented, "event %s must prevent default handling", ev)
				assert.Equal(t, c.State(), out.State)
			}

			assert.Equal(t, tt.want, c.State())
		})
	}
}

func TestDropWithoutFiles(t *testing.T) {
	acceptor := &recordingAcceptor{}
	c := New(acceptor, nil)

	c.Handle(Event{Type: Enter})
	out := c.Handle(Event{Type: Drop})

	assert.Equal(t, Inactive, c.State())
	assert.False(t, out.Forwarded)
	assert.Nil(t, out.Attachment)
	assert.NoError(t, out.Err)
	assert.Empty(t, acceptor.received)
}

func TestDropForwardsFirstFileOnly(t *testing.T) {
	acceptor := &recordingAcceptor{}
	c := New(acceptor, nil)

	out := c.Handle(Event{Type: Drop, Files: []intake.RawFile{pdf("first.pdf"), pdf("second.pdf"), pdf("third.pdf")}})

	require.True(t, out.Forwarded)
	require.NoError(t, out.Err)
	require.Len(t, acceptor.received, 1)
	assert.Equal(t, "first.pdf", acceptor.received[0].Name)
	assert.Equal(t, "first.pdf", out.Attachment.Name())
}

func TestDropPropagatesRejection(t *testing.T) {
	rec := &notify.Recorder{}
	in := intake.New(rec, nil)
	c := New(in, nil)

	accepted := c.Handle(Event{Type: Drop, Files: []intake.RawFile{pdf("cv.pdf")}})
	require.NoError(t, accepted.Err)

	rejected := c.Handle(Event{Type: Drop, Files: []intake.RawFile{
		intake.FromBytes("notes.txt", "text/plain", []byte("hi")),
		pdf("ignored.pdf"),
	}})

	assert.True(t, errors.Is(rejected.Err, intake.ErrUnsupportedType))
	assert.Nil(t, rejected.Attachment)
	assert.Equal(t, accepted.Attachment, in.Current())
	assert.Equal(t, 2, rec.Len())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "inactive", Inactive.String())
	assert.Equal(t, "drop", Drop.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
