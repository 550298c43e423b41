package core

import (
	"fmt"
	"io"
)

// Gateway is the uniform request/response contract against the remote
// authority. Each call decodes the JSON response into out when out is
// non-nil. Failures collapse to a single *RequestError regardless of cause;
// callers cannot (and must not) distinguish status codes.
type Gateway interface {
	Get(path string, out any) error
	Post(path string, body any, out any) error
	Put(path string, body any, out any) error
	Patch(path string, body any, out any) error
	Delete(path string) error

	// Upload submits a file as multipart form data and returns the stored
	// asset's URL.
	Upload(path string, filename string, content io.Reader) (*UploadResult, error)
}

// UploadResult is the response shape of the upload endpoint.
type UploadResult struct {
	URL string `json:"url"`
}

// RequestError is the single failure shape surfaced by every Gateway
// implementation. Status is zero when no HTTP response was received.
type RequestError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: request failed", e.Method, e.Path)
}

func (e *RequestError) Unwrap() error { return e.Err }
