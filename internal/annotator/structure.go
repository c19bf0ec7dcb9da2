package annotator

import "github.com/darnYOURsocks/Ripplewin/internal/core/domain"

// Structure merges the section labels of every fired group.
type Structure struct{}

// Name returns the stage name.
func (Structure) Name() string {
	return "structure"
}

// Apply fills Facets.Structure, deduplicated by first appearance.
func (Structure) Apply(a *Annotation) {
	seen := make(map[string]bool)
	sections := []string{}
	for _, g := range a.FiredGroups() {
		for _, s := range g.Sections {
			if seen[s] {
				continue
			}
			seen[s] = true
			sections = append(sections, s)
		}
	}
	a.Facets.Structure = sections
}

// Strategy appends each fired group's strategy records in group order.
type Strategy struct{}

// Name returns the stage name.
func (Strategy) Name() string {
	return "strategy"
}

// Apply fills Facets.Strategy.
func (Strategy) Apply(a *Annotation) {
	records := []domain.StrategyRecord{}
	for _, g := range a.FiredGroups() {
		for _, r := range g.Strategies {
			actions := make([]string, len(r.Actions))
			copy(actions, r.Actions)
			records = append(records, domain.StrategyRecord{Control: r.Control, Actions: actions})
		}
	}
	a.Facets.Strategy = records
}
