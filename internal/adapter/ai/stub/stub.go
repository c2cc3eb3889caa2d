// Package stub provides a deterministic in-process Generator for tests and
// offline development.
package stub

import (
	"context"
	"sync"

	"github.com/cvlens/cvlens/internal/domain"
)

// Generator replays canned responses in order and records every request it
// receives. The zero value returns an empty object forever.
type Generator struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     []domain.GenerateRequest
}

// New returns a stub replaying the given responses; after they run out, the
// last one repeats.
func New(responses ...string) *Generator {
	return &Generator{responses: responses}
}

// Fail makes the next call (in sequence position) return err instead of a
// response.
func (g *Generator) Fail(err error) *Generator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errs = append(g.errs, err)
	return g
}

// Generate implements domain.Generator.
func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(g.calls)
	g.calls = append(g.calls, req)
	if n < len(g.errs) && g.errs[n] != nil {
		return "", g.errs[n]
	}
	if len(g.responses) == 0 {
		return "{}", nil
	}
	if n >= len(g.responses) {
		n = len(g.responses) - 1
	}
	return g.responses[n], nil
}

// Calls returns a copy of the requests seen so far.
func (g *Generator) Calls() []domain.GenerateRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.GenerateRequest(nil), g.calls...)
}
