package annotator

import "github.com/darnYOURsocks/Ripplewin/internal/core/domain"

// Stage is one step of the annotation pipeline.
type Stage interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Apply reads the annotation's matches and writes its output facet.
	Apply(a *Annotation)
}

// Pipeline chains stages and runs them in order.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Run annotates raw against vocab through every stage.
func (p *Pipeline) Run(raw string, vocab *domain.Vocabulary) *Annotation {
	a := newAnnotation(raw, vocab)
	for _, stage := range p.stages {
		stage.Apply(a)
	}
	a.Facets = a.Facets.Normalize()
	return a
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
