package screening

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/intake"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
)

const (
	DefaultEndpoint = "http://localhost:8000/screen"
	DefaultTimeout  = 2 * time.Minute

	userAgent = "NaukriGraph/screener"

	fieldResume         = "resume"
	fieldJobDescription = "job_description"

	// Enough for any error page; the JSON envelope is much smaller.
	maxResponseSize = 1 << 20
)

// Response is the envelope returned by the scoring service.
type Response struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Client posts resumes to the scoring service.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	Endpoint   string
}

func NewClient(l *zap.Logger, endpoint string) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		logger:   logger.OrNop(l),
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		UserAgent: userAgent,
	}
}

// Screen sends one multipart request and decodes the envelope.
// A decoded envelope is returned even when it reports a failure.
func (c *Client) Screen(ctx context.Context, attachment *intake.Attachment, jobDescription string) (*Response, error) {
	body, contentType, err := buildForm(attachment, jobDescription)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.request(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.parseResponse(resp)
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()), zap.Int64("content_length", req.ContentLength))
	return c.HTTPClient.Do(req)
}

func (c *Client) parseResponse(resp *http.Response) (*Response, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("got response from scoring service",
		zap.Int("status", resp.StatusCode),
		zap.String("body", logger.TruncateForLog(string(data), 256)),
	)

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("bad status: %s", resp.Status)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &response, nil
}

func buildForm(attachment *intake.Attachment, jobDescription string) (io.Reader, string, error) {
	content, err := attachment.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open resume: %w", err)
	}
	defer content.Close()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldResume, escapeQuotes(attachment.Name())))
	h.Set("Content-Type", attachment.MIMEType())

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}

	if _, err := io.Copy(part, content); err != nil {
		return nil, "", fmt.Errorf("copy resume: %w", err)
	}

	if err := w.WriteField(fieldJobDescription, jobDescription); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &b, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
