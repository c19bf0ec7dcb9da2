// Package vocabulary loads the trigger vocabulary used by the annotator.
//
// The default vocabulary is embedded as TOML. A replacement can be loaded
// from a TOML or YAML file, selected by extension.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

//go:embed default.toml
var defaultTOML []byte

// Format is a vocabulary file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrInvalidVocabulary is returned when a vocabulary fails validation.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// Default returns the embedded vocabulary.
func Default() (domain.Vocabulary, error) {
	return Parse(defaultTOML, FormatTOML)
}

// Load reads a vocabulary file. The format is chosen from the extension:
// .yaml and .yml are YAML, anything else is TOML.
func Load(path string) (domain.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("reading vocabulary: %w", err)
	}
	return Parse(data, FormatFor(path))
}

// LoadOrDefault loads path, or returns the default vocabulary when path is empty.
func LoadOrDefault(path string) (domain.Vocabulary, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// FormatFor returns the format implied by a file name.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes and validates a vocabulary.
func Parse(data []byte, format Format) (domain.Vocabulary, error) {
	var v domain.Vocabulary

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return domain.Vocabulary{}, fmt.Errorf("parsing yaml vocabulary: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &v); err != nil {
			return domain.Vocabulary{}, fmt.Errorf("parsing toml vocabulary: %w", err)
		}
	default:
		return domain.Vocabulary{}, fmt.Errorf("%w: unknown format %q", ErrInvalidVocabulary, format)
	}

	if err := Validate(v); err != nil {
		return domain.Vocabulary{}, err
	}
	return v, nil
}

// Validate checks that every group is named, every trigger has a word and a
// concept, and trigger words are unique across groups.
func Validate(v domain.Vocabulary) error {
	seen := make(map[string]string)
	for i, g := range v.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("%w: group %d has no name", ErrInvalidVocabulary, i)
		}
		for _, t := range g.Triggers {
			word := strings.ToLower(strings.TrimSpace(t.Word))
			if word == "" {
				return fmt.Errorf("%w: group %s has an empty trigger", ErrInvalidVocabulary, g.Name)
			}
			if t.Concept == "" {
				return fmt.Errorf("%w: trigger %q has no concept", ErrInvalidVocabulary, t.Word)
			}
			if other, ok := seen[word]; ok {
				return fmt.Errorf("%w: trigger %q in both %s and %s", ErrInvalidVocabulary, t.Word, other, g.Name)
			}
			seen[word] = g.Name
		}
	}
	return nil
}
