package annotator

import (
	"strings"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// Summary joins the summary templates of the fired groups.
// With no fired group the summary is empty.
type Summary struct{}

// Name returns the stage name.
func (Summary) Name() string {
	return "summary"
}

// Apply fills Facets.Summary.
func (Summary) Apply(a *Annotation) {
	a.Facets.Summary = joinFragments(a.FiredGroups(), func(g domain.TriggerGroup) string {
		return g.Summary
	})
}

func joinFragments(groups []domain.TriggerGroup, pick func(domain.TriggerGroup) string) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if s := strings.TrimSpace(pick(g)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
