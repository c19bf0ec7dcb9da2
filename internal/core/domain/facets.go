package domain

import (
	"encoding/json"
	"fmt"
)

// Facet names, used for display and error reporting.
const (
	FacetKeywords  = "keywords"
	FacetMetaphors = "metaphors"
	FacetStructure = "structure"
	FacetStrategy  = "strategy"
)

// Facets are the structured annotations derived from an asset's raw text.
type Facets struct {
	Keywords  []string
	Metaphors []MetaphorPair
	Structure []string
	Strategy  []StrategyRecord
	Summary   string
}

// MetaphorPair maps a trigger found in the text to a domain concept.
// It serialises as a two-element JSON array: ["dirty","impurity"].
type MetaphorPair struct {
	Trigger string
	Concept string
}

// MarshalJSON encodes the pair as [trigger, concept].
func (p MetaphorPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Trigger, p.Concept})
}

// UnmarshalJSON decodes a two-element array.
func (p *MetaphorPair) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("metaphor pair has %d elements, want 2", len(pair))
	}
	p.Trigger, p.Concept = pair[0], pair[1]
	return nil
}

// StrategyRecord is one control and its ordered actions.
type StrategyRecord struct {
	Control string   `json:"chem_control" toml:"control" yaml:"control"`
	Actions []string `json:"actions" toml:"actions" yaml:"actions"`
}

// metaphorsDoc and structureDoc are the stored envelopes.
type metaphorsDoc struct {
	Pairs []MetaphorPair `json:"pairs"`
}

type structureDoc struct {
	Sections []string `json:"sections"`
}

// EncodedFacets holds the serialised form of Facets as stored per row.
type EncodedFacets struct {
	Keywords  string
	Metaphors string
	Structure string
	Strategy  string
	Summary   string
}

// Normalize replaces nil slices with empty ones so every facet
// serialises as a well-formed array or object.
func (f Facets) Normalize() Facets {
	if f.Keywords == nil {
		f.Keywords = []string{}
	}
	if f.Metaphors == nil {
		f.Metaphors = []MetaphorPair{}
	}
	if f.Structure == nil {
		f.Structure = []string{}
	}
	if f.Strategy == nil {
		f.Strategy = []StrategyRecord{}
	}
	for i := range f.Strategy {
		if f.Strategy[i].Actions == nil {
			f.Strategy[i].Actions = []string{}
		}
	}
	return f
}

// EncodeFacets serialises facets into their stored JSON forms.
func EncodeFacets(f Facets) (EncodedFacets, error) {
	f = f.Normalize()

	keywords, err := json.Marshal(f.Keywords)
	if err != nil {
		return EncodedFacets{}, fmt.Errorf("marshalling keywords: %w", err)
	}
	metaphors, err := json.Marshal(metaphorsDoc{Pairs: f.Metaphors})
	if err != nil {
		return EncodedFacets{}, fmt.Errorf("marshalling metaphors: %w", err)
	}
	structure, err := json.Marshal(structureDoc{Sections: f.Structure})
	if err != nil {
		return EncodedFacets{}, fmt.Errorf("marshalling structure: %w", err)
	}
	strategy, err := json.Marshal(f.Strategy)
	if err != nil {
		return EncodedFacets{}, fmt.Errorf("marshalling strategy: %w", err)
	}

	return EncodedFacets{
		Keywords:  string(keywords),
		Metaphors: string(metaphors),
		Structure: string(structure),
		Strategy:  string(strategy),
		Summary:   f.Summary,
	}, nil
}

// DecodeFacets parses stored JSON forms back into Facets.
// The first blob that fails to parse is reported as a *MalformedFacetError.
func DecodeFacets(e EncodedFacets) (Facets, error) {
	var f Facets

	if err := (FacetBlob{Name: FacetKeywords, Raw: e.Keywords}).Decode(&f.Keywords); err != nil {
		return Facets{}, err
	}

	var m metaphorsDoc
	if err := (FacetBlob{Name: FacetMetaphors, Raw: e.Metaphors}).Decode(&m); err != nil {
		return Facets{}, err
	}
	f.Metaphors = m.Pairs

	var s structureDoc
	if err := (FacetBlob{Name: FacetStructure, Raw: e.Structure}).Decode(&s); err != nil {
		return Facets{}, err
	}
	f.Structure = s.Sections

	if err := (FacetBlob{Name: FacetStrategy, Raw: e.Strategy}).Decode(&f.Strategy); err != nil {
		return Facets{}, err
	}

	f.Summary = e.Summary
	return f.Normalize(), nil
}

// FacetBlob is a facet in its stored string form.
type FacetBlob struct {
	Name string
	Raw  string
}

// Decode unmarshals the blob into v.
func (b FacetBlob) Decode(v any) error {
	if err := json.Unmarshal([]byte(b.Raw), v); err != nil {
		return &MalformedFacetError{Facet: b.Name, Raw: b.Raw, Err: err}
	}
	return nil
}

// Valid reports whether the blob is well-formed JSON.
func (b FacetBlob) Valid() bool {
	return json.Valid([]byte(b.Raw))
}

// Display returns the blob indented for reading. A blob that does not
// parse is returned unchanged.
func (b FacetBlob) Display() string {
	var v any
	if err := json.Unmarshal([]byte(b.Raw), &v); err != nil {
		return b.Raw
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return b.Raw
	}
	return string(out)
}
