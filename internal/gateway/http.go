package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"lelyo-go/internal/core"
)

// HTTPGateway talks to the real remote authority over HTTP. Every request
// body is JSON except Upload, which is multipart form data. When a token is
// set it is attached as a bearer Authorization header.
//
// All failure modes — transport errors, non-2xx statuses, malformed JSON —
// collapse into *core.RequestError; the status taxonomy is deliberately not
// exposed upward.
type HTTPGateway struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ core.Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway against the given base URL. token may be
// empty for anonymous access.
func NewHTTPGateway(baseURL string, token string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{},
	}
}

func (g *HTTPGateway) Get(path string, out any) error {
	return g.do(http.MethodGet, path, nil, "", out)
}

func (g *HTTPGateway) Post(path string, body any, out any) error {
	return g.doJSON(http.MethodPost, path, body, out)
}

func (g *HTTPGateway) Put(path string, body any, out any) error {
	return g.doJSON(http.MethodPut, path, body, out)
}

func (g *HTTPGateway) Patch(path string, body any, out any) error {
	return g.doJSON(http.MethodPatch, path, body, out)
}

func (g *HTTPGateway) Delete(path string) error {
	return g.do(http.MethodDelete, path, nil, "", nil)
}

// Upload submits the file under the form field "file".
func (g *HTTPGateway) Upload(path string, filename string, content io.Reader) (*core.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, &core.RequestError{Method: http.MethodPost, Path: path, Err: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, &core.RequestError{Method: http.MethodPost, Path: path, Err: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &core.RequestError{Method: http.MethodPost, Path: path, Err: err}
	}

	var out core.UploadResult
	if err := g.do(http.MethodPost, path, &buf, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *HTTPGateway) doJSON(method, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &core.RequestError{Method: method, Path: path, Err: err}
	}
	return g.do(method, path, bytes.NewReader(payload), "application/json", out)
}

func (g *HTTPGateway) do(method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequest(method, g.baseURL+path, body)
	if err != nil {
		return &core.RequestError{Method: method, Path: path, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return &core.RequestError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &core.RequestError{Method: method, Path: path, Status: res.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &core.RequestError{Method: method, Path: path, Err: err}
	}
	return nil
}
