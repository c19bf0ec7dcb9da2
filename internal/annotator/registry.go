package annotator

import (
	"fmt"
	"sort"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// BuilderFunc creates a Stage from generic config.
// Config is a map of stage-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (Stage, error)

// Registry maps stage names to their builders.
// It allows dynamic construction of stages from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a stage builder to the registry.
// Name should be unique and match the stage's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a stage by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (Stage, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStage, name)
	}
	return builder(cfg)
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildPipeline builds a pipeline from stage names in order.
// cfg holds per-stage settings keyed by stage name.
func (r *Registry) BuildPipeline(names []string, cfg map[string]map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		stage, err := r.Build(name, cfg[name])
		if err != nil {
			return nil, err
		}
		p.Add(stage)
	}
	return p, nil
}
