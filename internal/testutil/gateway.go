package testutil

import (
	"io"
	"net/http"

	"lelyo-go/internal/core"
	"lelyo-go/internal/gateway"
)

// NewTestGateway creates an empty in-memory authority anchored to the fixed
// test clock.
func NewTestGateway() *gateway.MemoryGateway {
	return gateway.NewMemoryGateway(FixedClock())
}

// FailingGateway rejects every call with a RequestError, simulating an
// unreachable or erroring authority.
type FailingGateway struct {
	Status int // defaults to 500
	Calls  []string
}

var _ core.Gateway = (*FailingGateway)(nil)

func (g *FailingGateway) fail(method, path string) *core.RequestError {
	g.Calls = append(g.Calls, method+" "+path)
	status := g.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &core.RequestError{Method: method, Path: path, Status: status}
}

func (g *FailingGateway) Get(path string, out any) error { return g.fail(http.MethodGet, path) }
func (g *FailingGateway) Post(path string, body any, out any) error {
	return g.fail(http.MethodPost, path)
}
func (g *FailingGateway) Put(path string, body any, out any) error {
	return g.fail(http.MethodPut, path)
}
func (g *FailingGateway) Patch(path string, body any, out any) error {
	return g.fail(http.MethodPatch, path)
}
func (g *FailingGateway) Delete(path string) error { return g.fail(http.MethodDelete, path) }
func (g *FailingGateway) Upload(path string, filename string, content io.Reader) (*core.UploadResult, error) {
	return nil, g.fail(http.MethodPost, path)
}
