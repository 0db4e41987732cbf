package nodly

import (
	"github.com/viant/afs/storage"
	"github.com/viant/nodly/extension"
	"github.com/viant/nodly/service/dao/definition"
	"github.com/viant/nodly/service/event"
	"github.com/viant/nodly/service/messaging"
	"github.com/viant/nodly/service/meta"
	"github.com/viant/nodly/tracing"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the engine service.
type Option[T any] func(s *Service[T])

// WithMetaService sets the meta service
func WithMetaService[T any](service *meta.Service) Option[T] {
	return func(s *Service[T]) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the meta base URL
func WithMetaBaseURL[T any](url string) Option[T] {
	return func(s *Service[T]) {
		s.metaBaseURL = url
	}
}

// WithMetaFsOptions with meta file system options
func WithMetaFsOptions[T any](options ...storage.Option) Option[T] {
	return func(s *Service[T]) {
		s.metaFsOptions = options
	}
}

// WithDefinitions sets the flow definition store.
func WithDefinitions[T any](definitions *definition.Service) Option[T] {
	return func(s *Service[T]) {
		s.runtime.definitions = definitions
	}
}

// WithNodes sets the node constructor registry.
func WithNodes[T any](nodes *extension.Nodes[T]) Option[T] {
	return func(s *Service[T]) {
		s.nodes = nodes
	}
}

// WithPredicates sets the named predicate registry.
func WithPredicates[T any](predicates *extension.Predicates[T]) Option[T] {
	return func(s *Service[T]) {
		s.predicates = predicates
	}
}

// WithExtensionTypes sets the extension types
func WithExtensionTypes[T any](types ...*x.Type) Option[T] {
	return func(s *Service[T]) {
		s.extensionTypes = types
	}
}

// WithQueue sets the lifecycle event queue
func WithQueue[T any](queue messaging.Queue[event.Event]) Option[T] {
	return func(s *Service[T]) {
		s.queue = queue
	}
}

// WithEventService sets the lifecycle event service.
func WithEventService[T any](service *event.Service) Option[T] {
	return func(s *Service[T]) {
		s.eventService = service
	}
}

// WithConfig sets the engine configuration.
func WithConfig[T any](config *Config) Option[T] {
	return func(s *Service[T]) {
		s.config = config
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile
// is empty the stdout exporter is used; otherwise traces are written to the
// supplied file path. The function is safe to call multiple times - the first
// successful initialisation wins.
func WithTracing[T any](serviceName, serviceVersion, outputFile string) Option[T] {
	return func(s *Service[T]) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing with the supplied span
// exporter, enabling OTLP, Jaeger, Zipkin and alike.
func WithTracingExporter[T any](serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option[T] {
	return func(s *Service[T]) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
