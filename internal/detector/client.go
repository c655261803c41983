package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

// APIError is a non-200 reply from the detection endpoint. The first 4 KiB
// of the response body is kept as diagnostic text for the user.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("detection endpoint returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to the remote detection endpoint. One image in, one JSON
// result out; no retries.
type Client struct {
	apiURL string
	http   *http.Client
}

// NewClient creates a detection client with a bounded request timeout.
func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		apiURL: apiURL,
		http:   &http.Client{Timeout: timeout},
	}
}

// Detect sends the image bytes as a multipart "file" field and parses the
// detection result. A transport failure or non-200 status aborts the flow;
// missing response fields fall back to their documented defaults.
func (c *Client) Detect(ctx context.Context, imageData []byte) (*Result, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="image.jpg"`)
	header.Set("Content-Type", "image/jpeg")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}

	if _, err := io.Copy(part, bytes.NewReader(imageData)); err != nil {
		return nil, fmt.Errorf("copy image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(diag)}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	result.applyDefaults()

	return &result, nil
}
