package jobdesc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "jd.txt")
	if err := os.WriteFile(file, []byte("  Senior Go engineer\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "inline value kept raw",
			src:  Source{Value: "  Python developer  "},
			want: "  Python developer  ",
		},
		{
			name: "file takes precedence",
			src:  Source{Value: "ignored", File: " " + file + " "},
			want: "  Senior Go engineer\n",
		},
		{
			name: "nothing configured",
			src:  Source{},
			want: "",
		},
		{
			name:    "missing file",
			src:     Source{Name: "jd", File: filepath.Join(dir, "missing.txt")},
			wantErr: "reading jd from file",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
