package nodly

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/nodly/extension"
	"github.com/viant/nodly/runtime/execution"
	"github.com/viant/nodly/service/dao/definition"
	"github.com/viant/nodly/service/event"
	"github.com/viant/nodly/service/flow"
	"github.com/viant/nodly/service/messaging"
	mmemory "github.com/viant/nodly/service/messaging/memory"
	"github.com/viant/nodly/service/meta"
	"github.com/viant/x"
	"gopkg.in/yaml.v3"
)

// Service is the engine façade for one subject type T: it owns the
// registries, the definition store and the runtime executing built trees.
type Service[T any] struct {
	runtime        *Runtime[T]
	metaService    *meta.Service
	nodes          *extension.Nodes[T]
	predicates     *extension.Predicates[T]
	extensionTypes []*x.Type
	queue          messaging.Queue[event.Event]
	eventService   *event.Service
	metaBaseURL    string
	metaFsOptions  []storage.Option
	config         *Config
}

func (s *Service[T]) init(options []Option[T]) error {
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	s.ensureBaseSetup()
	s.runtime.flowService = flow.New(
		flow.WithDefinitions[T](s.runtime.definitions),
		flow.WithNodes[T](s.nodes),
		flow.WithPredicates[T](s.predicates),
		flow.WithDefaultWorkers[T](s.config.Group.MaxWorkers),
	)
	s.runtime.events = s.eventService
	return nil
}

func (s *Service[T]) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.runtime.definitions == nil {
		s.runtime.definitions = definition.New(definition.WithMetaService(s.metaService))
	}
	if s.nodes == nil {
		s.nodes = extension.NewNodes[T](s.extensionTypes...)
	}
	if s.predicates == nil {
		s.predicates = extension.NewPredicates[T]()
	}
	if s.queue == nil {
		config := mmemory.DefaultConfig()
		if s.config.Events.QueueBuffer > 0 {
			config.QueueBuffer = s.config.Events.QueueBuffer
		}
		s.queue = mmemory.NewQueue[event.Event](config)
	}
	if s.eventService == nil {
		s.eventService = event.New(s.queue)
	}
}

// Runtime returns the execution runtime.
func (s *Service[T]) Runtime() *Runtime[T] {
	return s.runtime
}

// Nodes returns the node constructor registry.
func (s *Service[T]) Nodes() *extension.Nodes[T] {
	return s.nodes
}

// Predicates returns the named predicate registry.
func (s *Service[T]) Predicates() *extension.Predicates[T] {
	return s.predicates
}

// Events returns the lifecycle event service.
func (s *Service[T]) Events() *event.Service {
	return s.eventService
}

// RegisterNode registers a node constructor under (kind, name).
func (s *Service[T]) RegisterNode(kind, name string, ctor extension.Constructor[T]) {
	s.nodes.Register(kind, name, ctor)
}

// RegisterPredicate registers a non-blocking predicate under name.
func (s *Service[T]) RegisterPredicate(name string, predicate execution.Predicate[T]) {
	s.predicates.Register(name, predicate)
}

// RegisterCtxPredicate registers a blocking predicate under name.
func (s *Service[T]) RegisterCtxPredicate(name string, predicate execution.CtxPredicate[T]) {
	s.predicates.RegisterCtx(name, predicate)
}

// RegisterExtensionTypes adds Go types to the type registry.
func (s *Service[T]) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.nodes.Types().Register(types[i])
	}
}

// Config returns a snapshot of the effective configuration.
func (s *Service[T]) Config() Config {
	return *s.config
}

// New creates an engine service for subject type T.
func New[T any](options ...Option[T]) (*Service[T], error) {
	ret := &Service[T]{runtime: &Runtime[T]{}}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfigYAML creates an engine service from serialised configuration.
func NewFromConfigYAML[T any](encoded []byte, options ...Option[T]) (*Service[T], error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(encoded, config); err != nil {
		return nil, err
	}
	return New(append([]Option[T]{WithConfig[T](config)}, options...)...)
}
