// Package jobdesc resolves the job-description text handed to the screening service.
package jobdesc

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where the job description comes from.
type Source struct {
	// Name is used in error messages.
	Name string
	// Value is inline text from a flag or a prompt.
	Value string
	// File points to a file with the text. When set it takes precedence over Value.
	File string
}

// Load returns the job description exactly as written. Whitespace is kept:
// blank descriptions are rejected at submit time, not here.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "job description"
	}

	file := strings.TrimSpace(src.File)
	if file == "" {
		return src.Value, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}

	return string(data), nil
}
