package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Submission is the JSON body the contact webhook expects.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Problem string `json:"problem"`
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook responded %d %s", e.Code, http.StatusText(e.Code))
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Cause() error  { return e.err }
func (e *transportError) Unwrap() error { return e.err }

// IsTransport reports whether err came from the network rather than
// from the endpoint's answer.
func IsTransport(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

// Client posts submissions to a single endpoint.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// New returns a client for url. A zero timeout leaves the request
// unbounded.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Send posts sub once. Any 2xx status is success.
func (c *Client) Send(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return errors.Wrap(err, "encode submission")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.WithStack(&transportError{err: errors.Wrap(err, "post submission")})
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
