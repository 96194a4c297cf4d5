package stache

import (
	"context"
	"fmt"
	"sort"

	"github.com/computerscienceiscool/stache-search/pkg/config"
)

// Handler executes a command given the shared request.
type Handler func(ctx context.Context, req *Request) (Result, error)

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Handler)}
}

// Register sets the handler for name. It panics if name already exists.
func (r *Registry) Register(name string, h Handler) {
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("command %s already registered", name))
	}
	r.commands[name] = h
}

// Lookup returns the handler and whether it exists.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.commands[name]
	return h, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry registers the four stache search commands backed by s.
func NewDefaultRegistry(s *Service) *Registry {
	r := NewRegistry()
	r.Register(config.CommandAddSearchSpec, s.AddSearchSpec)
	r.Register(config.CommandPublishSearch, s.PublishSearch)
	r.Register(config.CommandRemoveSearchJSON, s.RemoveSearchJSON)
	r.Register(config.CommandRemoveSearchSpec, s.RemoveSearchSpec)
	return r
}
