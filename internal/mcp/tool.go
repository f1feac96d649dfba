package mcp

import (
	"context"
	"fmt"
)

// Handler executes a tool. A returned error becomes an isError text result;
// a returned string becomes a normal text result. Handlers never panic the
// server: taxonomy failures are ordinary error values.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool pairs a tool's metadata with its handler.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Handler     Handler
}

// Registry holds the callable tool set in registration order.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Tool)}
}

// Register adds a tool. Registering the same name twice replaces the handler
// but keeps the original list position.
func (r *Registry) Register(t Tool) {
	if _, ok := r.byName[t.Name]; !ok {
		r.tools = append(r.tools, t)
	} else {
		for i := range r.tools {
			if r.tools[i].Name == t.Name {
				r.tools[i] = t
				break
			}
		}
	}
	r.byName[t.Name] = t
}

// List returns tool metadata in registration order.
func (r *Registry) List() []ToolInfo {
	infos := make([]ToolInfo, 0, len(r.tools))
	for _, t := range r.tools {
		infos = append(infos, ToolInfo{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return infos
}

// Call dispatches to the named tool. Tool-level failures come back as an
// isError result, not as a Go error; the error return is reserved for
// unknown tool names.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (CallResult, error) {
	t, ok := r.byName[name]
	if !ok {
		return CallResult{}, fmt.Errorf("unknown tool: %s", name)
	}

	text, err := t.Handler(ctx, args)
	if err != nil {
		return TextResult(err.Error(), true), nil
	}
	return TextResult(text, false), nil
}
