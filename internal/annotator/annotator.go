package annotator

import (
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
)

// Ensure Annotator implements the interface.
var _ driven.Annotator = (*Annotator)(nil)

// Annotator runs a stage pipeline against a fixed vocabulary.
type Annotator struct {
	vocab    domain.Vocabulary
	pipeline *Pipeline
}

// New creates an annotator. With no stages the default pipeline is used.
func New(vocab domain.Vocabulary, stages ...Stage) *Annotator {
	if len(stages) == 0 {
		stages = []Stage{NewKeywords(), Metaphors{}, Structure{}, Strategy{}, Summary{}, Expansion{}}
	}
	return &Annotator{
		vocab:    vocab,
		pipeline: NewPipeline(stages...),
	}
}

// NewFromConfig builds the pipeline from stage names through the registry.
// Empty names select DefaultStages.
func NewFromConfig(
	vocab domain.Vocabulary, r *Registry, names []string, cfg map[string]map[string]any,
) (*Annotator, error) {
	if len(names) == 0 {
		names = DefaultStages
	}
	p, err := r.BuildPipeline(names, cfg)
	if err != nil {
		return nil, err
	}
	return &Annotator{vocab: vocab, pipeline: p}, nil
}

// Annotate derives facets and an expansion from raw text.
func (a *Annotator) Annotate(raw string) (domain.Facets, domain.Expansion) {
	ann := a.pipeline.Run(raw, &a.vocab)
	return ann.Facets, ann.Expansion
}

// Vocabulary returns the vocabulary the annotator matches against.
func (a *Annotator) Vocabulary() domain.Vocabulary {
	return a.vocab
}

// Stages returns the pipeline's stage names.
func (a *Annotator) Stages() []string {
	return a.pipeline.Names()
}
