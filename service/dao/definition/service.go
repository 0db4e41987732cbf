// Package definition loads, decodes and caches declarative flow definitions.
package definition

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/viant/nodly/model"
	"github.com/viant/nodly/service/dao"
	"github.com/viant/nodly/service/meta"
	"gopkg.in/yaml.v3"
)

// Service is the flow definition store. Definitions arrive either from
// storage via Load, from raw YAML via DecodeYAML or programmatically via
// Upsert; lookups by name serve the in-memory registry.
type Service struct {
	metaService *meta.Service
	mux         sync.RWMutex
	flows       map[string]*model.Flow
}

// New creates a definition service.
func New(options ...Option) *Service {
	ret := &Service{flows: make(map[string]*model.Flow)}
	for _, option := range options {
		option(ret)
	}
	if ret.metaService == nil {
		ret.metaService = meta.New(nil, "")
	}
	return ret
}

// Load loads a flow definition from YAML at the specified URL and registers
// it under its name. A URL without extension defaults to .yaml.
func (s *Service) Load(ctx context.Context, URL string) (*model.Flow, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	var spec flowSpec
	if err := s.metaService.Load(ctx, URL, &spec); err != nil {
		return nil, fmt.Errorf("failed to load flow from %s: %w", URL, err)
	}
	flow, err := spec.asFlow(URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse flow from %s: %w", URL, err)
	}
	if err := s.Upsert(flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// DecodeYAML decodes a flow definition from raw YAML and registers it.
func (s *Service) DecodeYAML(encoded []byte) (*model.Flow, error) {
	var spec flowSpec
	if err := yaml.Unmarshal(encoded, &spec); err != nil {
		return nil, err
	}
	flow, err := spec.asFlow("")
	if err != nil {
		return nil, err
	}
	if err := s.Upsert(flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// Upsert registers or replaces a flow definition under its name.
func (s *Service) Upsert(flow *model.Flow) error {
	if flow == nil {
		return dao.ErrNilEntity
	}
	if flow.Name == "" {
		return dao.ErrInvalidName
	}
	if issues := flow.Validate(); len(issues) > 0 {
		return issues[0]
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.flows[flow.Name] = flow
	return nil
}

// Lookup returns the flow registered under name.
func (s *Service) Lookup(name string) (*model.Flow, error) {
	if name == "" {
		return nil, dao.ErrInvalidName
	}
	s.mux.RLock()
	defer s.mux.RUnlock()
	flow, ok := s.flows[name]
	if !ok {
		return nil, fmt.Errorf("flow %q: %w", name, dao.ErrNotFound)
	}
	return flow, nil
}

// Exists reports whether a flow is registered under name.
func (s *Service) Exists(name string) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	_, ok := s.flows[name]
	return ok
}

// Names returns the registered flow names.
func (s *Service) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	names := make([]string, 0, len(s.flows))
	for name := range s.flows {
		names = append(names, name)
	}
	return names
}

// Delete removes the flow registered under name; removing an absent flow is
// a no-op.
func (s *Service) Delete(name string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.flows, name)
}

// flowNameFromURL extracts a flow name from a URL (file name without
// extension).
func flowNameFromURL(URL string) string {
	base := filepath.Base(URL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
