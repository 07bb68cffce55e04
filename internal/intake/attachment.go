package intake

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// MaxFileSize is the largest accepted resume, inclusive.
	MaxFileSize int64 = 10 * 1024 * 1024
)

func init() {
	// Not every system mime table knows docx.
	_ = mime.AddExtensionType(".docx", MIMETypeDOCX)
	_ = mime.AddExtensionType(".pdf", MIMETypePDF)
}

type opener func() (io.ReadCloser, error)

// RawFile is a file handle as the user selected or dropped it, before validation.
type RawFile struct {
	Name     string
	Size     int64
	MIMEType string

	open opener
}

// FromPath describes a file on disk. The MIME type is declared from the
// extension, the same way a browser fills File.type.
func FromPath(path string) (RawFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RawFile{}, err
	}

	if info.IsDir() {
		return RawFile{}, fmt.Errorf("%s is a directory", path)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	return RawFile{
		Name:     filepath.Base(path),
		Size:     info.Size(),
		MIMEType: mimeType,
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FromBytes describes an in-memory file.
func FromBytes(name, mimeType string, data []byte) RawFile {
	return RawFile{
		Name:     name,
		Size:     int64(len(data)),
		MIMEType: mimeType,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Attachment is a validated resume. It is replaced as a whole on a new
// selection and never changed in place.
type Attachment struct {
	name     string
	size     int64
	mimeType string
	open     opener
}

func (a *Attachment) Name() string     { return a.name }
func (a *Attachment) Size() int64      { return a.size }
func (a *Attachment) MIMEType() string { return a.mimeType }

// Open returns the raw bytes of the attachment. The caller closes the reader.
func (a *Attachment) Open() (io.ReadCloser, error) {
	if a == nil || a.open == nil {
		return nil, fmt.Errorf("attachment has no content")
	}

	return a.open()
}
