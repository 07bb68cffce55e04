package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		" description ", " cv.pdf is ready for screening. ",
		"hint", "   ",
		"  ", "no key",
		"dangling",
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "description" || fields[0].String != "cv.pdf is ready for screening." {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	if got := StringFields(); len(got) != 0 {
		t.Fatalf("expected no fields, got %d", len(got))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	watcher := WithFields(zap.New(core), zap.String("dir", "/tmp/drop"))
	watcher.Info("watching drop folder")

	entries := observed.FilterMessage("watching drop folder").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["dir"] != "/tmp/drop" {
		t.Fatalf("unexpected context: %v", entries[0].ContextMap())
	}

	if WithFields(nil) == nil {
		t.Fatalf("nil logger must fall back to a no-op one")
	}
}

func TestFileFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("accepted", FileFields("cv.pdf", "application/pdf", 2048)...)

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldFileName] != "cv.pdf" {
		t.Fatalf("unexpected file name: %v", ctx[FieldFileName])
	}
	if ctx[FieldMIMEType] != "application/pdf" {
		t.Fatalf("unexpected mime type: %v", ctx[FieldMIMEType])
	}
	if ctx[FieldFileSize] != int64(2048) {
		t.Fatalf("unexpected file size: %v", ctx[FieldFileSize])
	}

	fields := FileFields("", "", 0)
	if len(fields) != 1 {
		t.Fatalf("expected only the size field, got %d", len(fields))
	}
}

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "no limit drops the text",
			input:  "Senior Go engineer",
			limit:  0,
			expect: "",
		},
		{
			name:   "short job description kept",
			input:  "Go engineer",
			limit:  80,
			expect: "Go engineer",
		},
		{
			name:   "multi-line job description flattened",
			input:  "Requirements:\n\t- Go\n\t- Kubernetes\n",
			limit:  80,
			expect: "Requirements: - Go - Kubernetes",
		},
		{
			name:   "long body cut",
			input:  `{"success":false,"error":"quota exceeded"}`,
			limit:  16,
			expect: `{"success":false...`,
		},
		{
			name:   "cut counts runes",
			input:  "Développeur Python",
			limit:  11,
			expect: "Développeur...",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
