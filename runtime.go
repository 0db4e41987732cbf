package nodly

import (
	"context"
	"fmt"

	"github.com/viant/nodly/internal/idgen"
	"github.com/viant/nodly/model"
	"github.com/viant/nodly/policy"
	"github.com/viant/nodly/progress"
	"github.com/viant/nodly/runtime/execution"
	"github.com/viant/nodly/runtime/node"
	"github.com/viant/nodly/service/dao/definition"
	"github.com/viant/nodly/service/event"
	"github.com/viant/nodly/service/flow"
	"github.com/viant/nodly/tracing"
)

// Runtime resolves flow definitions and executes built trees for one subject
// type T.
type Runtime[T any] struct {
	definitions *definition.Service
	flowService *flow.Service[T]
	events      *event.Service
}

// Definitions returns the flow definition store.
func (r *Runtime[T]) Definitions() *definition.Service {
	return r.definitions
}

// LoadFlow loads a flow definition from the configured storage location and
// registers it under its name.
func (r *Runtime[T]) LoadFlow(ctx context.Context, location string) (*model.Flow, error) {
	return r.definitions.Load(ctx, location)
}

// DecodeYAML decodes and registers a flow definition from raw YAML.
func (r *Runtime[T]) DecodeYAML(data []byte) (*model.Flow, error) {
	return r.definitions.DecodeYAML(data)
}

// UpsertDefinition parses the supplied YAML bytes and registers the resulting
// flow definition. When data is nil the currently registered definition under
// location's name is discarded instead, causing a reload on next use.
func (r *Runtime[T]) UpsertDefinition(location string, data []byte) error {
	if r == nil || r.definitions == nil {
		return fmt.Errorf("runtime not fully initialised, definition store missing")
	}
	if data == nil {
		return r.RefreshFlow(location)
	}
	f, err := r.definitions.DecodeYAML(data)
	if err != nil {
		return fmt.Errorf("failed to decode flow YAML: %w", err)
	}
	// Keep the source URL aligned with the supplied location for downstream
	// code relying on it.
	if f.Source == nil {
		f.Source = &model.Source{URL: location}
	} else {
		f.Source.URL = location
	}
	return nil
}

// RefreshFlow discards the cached definition registered under name so the
// next LoadFlow call reloads it from storage.
func (r *Runtime[T]) RefreshFlow(name string) error {
	if r == nil || r.definitions == nil {
		return fmt.Errorf("runtime not fully initialised, definition store missing")
	}
	r.definitions.Delete(name)
	return nil
}

// Build resolves the named flow definition into a fresh executable tree.
func (r *Runtime[T]) Build(ctx context.Context, name string) (node.Node[T], error) {
	return r.flowService.Build(ctx, name)
}

// runOptions collects per-run settings.
type runOptions struct {
	options    map[string]any
	policy     *policy.Policy
	onProgress func(progress.Snapshot)
}

// RunOption customises a single Execute call.
type RunOption func(o *runOptions)

// WithRunOptions attaches the shared read-only options bag for the run.
func WithRunOptions(options map[string]any) RunOption {
	return func(o *runOptions) { o.options = options }
}

// WithRunPolicy attaches an execution policy gating nodes by name.
func WithRunPolicy(p *policy.Policy) RunOption {
	return func(o *runOptions) { o.policy = p }
}

// WithProgressListener registers a callback invoked after every node counter
// update.
func WithProgressListener(onProgress func(progress.Snapshot)) RunOption {
	return func(o *runOptions) { o.onProgress = onProgress }
}

// Execute builds the named flow and runs it against subject. The returned
// result tree carries every node outcome; Execute returns a non-nil error
// only when the flow could not be built.
func (r *Runtime[T]) Execute(ctx context.Context, flowName string, subject T, options ...RunOption) (*execution.Result, error) {
	root, err := r.Build(ctx, flowName)
	if err != nil {
		return nil, err
	}
	return r.ExecuteNode(ctx, flowName, root, subject, options...), nil
}

// ExecuteNode runs an already built tree against subject. Failures stay on
// the result tree; use Result.AggregateError to collapse them into one error.
func (r *Runtime[T]) ExecuteNode(ctx context.Context, flowName string, root node.Node[T], subject T, options ...RunOption) *execution.Result {
	runOpts := &runOptions{}
	for _, option := range options {
		option(runOpts)
	}
	runID := idgen.New()
	if runOpts.policy != nil {
		ctx = policy.WithPolicy(ctx, runOpts.policy)
	}
	ctx, _ = progress.WithNewTracker(ctx, runID, flowName, runOpts.onProgress)
	ctx, span := tracing.StartSpan(ctx, "flow.run "+flowName)

	ec := execution.NewContext(ctx, subject,
		execution.WithID[T](runID),
		execution.WithOptions[T](execution.NewOptions(runOpts.options)),
		execution.WithEvents[T](r.events),
	)
	r.events.Publish(ec, &event.Event{RunID: runID, Flow: flowName, Kind: event.KindFlowStarted})

	result := root.Execute(ec)
	ec.BindResult(result)

	err := result.AggregateError()
	finished := &event.Event{RunID: runID, Flow: flowName, Kind: event.KindFlowFinished, Status: result.Status.String()}
	if err != nil {
		finished.Error = err.Error()
	}
	r.events.Publish(ec, finished)
	tracing.EndSpan(span, err)
	return result
}
