package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "v1", v.Version)
	require.Len(t, v.Terms, 6)
	assert.Equal(t, "impurity", v.Terms[0].Term)
	assert.Equal(t, "obviology", v.Terms[5].Domain)

	require.Len(t, v.Groups, 2)
	impurity := v.Groups[0]
	assert.Equal(t, "impurity", impurity.Name)
	require.Len(t, impurity.Triggers, 3)
	assert.Equal(t, "dirty", impurity.Triggers[0].Word)
	assert.Equal(t, "impurity", impurity.Triggers[0].Concept)
	assert.Equal(t, []string{"Impurity control", "Chelation", "Buffers"}, impurity.Sections)
	require.Len(t, impurity.Strategies, 4)
	assert.Equal(t, "solvent change", impurity.Strategies[0].Control)
	assert.Equal(t, []string{"fresh towel", "new scent", "sunlight"}, impurity.Strategies[0].Actions)

	radical := v.Groups[1]
	assert.Equal(t, "loop", radical.Triggers[0].Word)
	assert.Equal(t, "radical scavenger", radical.Triggers[0].Concept)
}

func TestDefault_TriggerConceptsAreDictionaryTerms(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	for _, g := range v.Groups {
		for _, trig := range g.Triggers {
			_, ok := v.Term(trig.Concept)
			assert.True(t, ok, "concept %q for trigger %q missing from terms", trig.Concept, trig.Word)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"vocab.yaml", FormatYAML},
		{"vocab.YML", FormatYAML},
		{"vocab.toml", FormatTOML},
		{"vocab", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFor(tt.path))
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	content := `
version: v2
terms:
  - term: oxidation
    domain: chemistry
    science_definition: Loss of electrons
    human_analogy: Wearing down
    human_context_strategy: Rest and recovery
    version: v2
groups:
  - name: fatigue
    sections: [Energy control]
    summary: Fatigue mapped to oxidation.
    humanized: You feel worn down.
    triggers:
      - word: tired
        concept: oxidation
    strategies:
      - control: antioxidant
        actions: [sleep, water]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "v2", v.Version)
	require.Len(t, v.Groups, 1)
	assert.Equal(t, "tired", v.Groups[0].Triggers[0].Word)
	assert.Equal(t, []string{"sleep", "water"}, v.Groups[0].Strategies[0].Actions)
	assert.Equal(t, "Loss of electrons", v.Terms[0].ScienceDefinition)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading vocabulary")
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	v, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Len(t, v.Groups, 2)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unnamed group", "[[groups]]\nname = \"\"\n"},
		{"empty trigger", "[[groups]]\nname = \"g\"\n[[groups.triggers]]\nword = \" \"\nconcept = \"c\"\n"},
		{"trigger without concept", "[[groups]]\nname = \"g\"\n[[groups.triggers]]\nword = \"w\"\n"},
		{"duplicate trigger", "[[groups]]\nname = \"a\"\n[[groups.triggers]]\nword = \"w\"\nconcept = \"c\"\n" +
			"[[groups]]\nname = \"b\"\n[[groups.triggers]]\nword = \"W\"\nconcept = \"c\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatTOML)
			assert.ErrorIs(t, err, ErrInvalidVocabulary)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte("groups = ["), FormatTOML)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidVocabulary)
}
