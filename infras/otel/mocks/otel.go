package mocks

import (
	"context"
	"sync"
	"todolist/infras/otel"
)

// Otel is a no-export tracer that remembers every scope it hands out.
type Otel struct {
	mu     sync.Mutex
	Scopes []*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{ScopeName: scopeName, SpanName: spanName, Attributes: map[string]any{}}
	o.Scopes = append(o.Scopes, scope)

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Errors returns every error traced through any scope.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for _, scope := range o.Scopes {
		errs = append(errs, scope.Errors...)
	}

	return errs
}

func NewOtel() *Otel {
	return &Otel{}
}
