package domain

// DomainTerm is a reference vocabulary entry. Terms are seeded once when
// the dictionary is empty and never mutated by the pipeline.
type DomainTerm struct {
	ID                   int64  `json:"id" toml:"-" yaml:"-"`
	Term                 string `json:"term" toml:"term" yaml:"term"`
	Domain               string `json:"domain" toml:"domain" yaml:"domain"`
	ScienceDefinition    string `json:"science_definition" toml:"science_definition" yaml:"science_definition"`
	HumanAnalogy         string `json:"human_analogy" toml:"human_analogy" yaml:"human_analogy"`
	HumanContextStrategy string `json:"human_context_strategy" toml:"human_context_strategy" yaml:"human_context_strategy"`
	Version              string `json:"version" toml:"version" yaml:"version"`
}

// Trigger is a word whose presence in text activates its group.
type Trigger struct {
	// Word is matched as a case-insensitive substring.
	Word string `toml:"word" yaml:"word"`

	// Concept is the dictionary term the word maps to.
	Concept string `toml:"concept" yaml:"concept"`

	// Frame is the framing note for expansions. When empty the concept's
	// human context strategy is used.
	Frame string `toml:"frame" yaml:"frame"`
}

// TriggerGroup is a set of triggers that share sections, strategies and
// summary text. Groups fire independently of each other.
type TriggerGroup struct {
	Name       string           `toml:"name" yaml:"name"`
	Triggers   []Trigger        `toml:"triggers" yaml:"triggers"`
	Sections   []string         `toml:"sections" yaml:"sections"`
	Strategies []StrategyRecord `toml:"strategies" yaml:"strategies"`
	Summary    string           `toml:"summary" yaml:"summary"`
	Humanized  string           `toml:"humanized" yaml:"humanized"`
}

// Vocabulary is the matching vocabulary consulted by the annotator:
// the dictionary terms plus the trigger groups that reference them.
type Vocabulary struct {
	Version string         `toml:"version" yaml:"version"`
	Terms   []DomainTerm   `toml:"terms" yaml:"terms"`
	Groups  []TriggerGroup `toml:"groups" yaml:"groups"`
}

// Term returns the dictionary entry with the given name.
func (v *Vocabulary) Term(name string) (DomainTerm, bool) {
	for _, t := range v.Terms {
		if t.Term == name {
			return t, true
		}
	}
	return DomainTerm{}, false
}
